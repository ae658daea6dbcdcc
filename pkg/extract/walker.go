package extract

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/confsweep/confsweep/pkg/config"
	"github.com/confsweep/confsweep/pkg/logging"
	"github.com/confsweep/confsweep/pkg/types"
)

// Settings-catalog instance field names.
const (
	fieldDefinitionID    = "settingDefinitionId"
	fieldChildren        = "children"
	fieldGroupCollection = "groupSettingCollectionValue"
	fieldScalarCollect   = "simpleSettingCollectionValue"
	fieldWrapperValue    = "value"
)

// Walker flattens nested setting-instance trees into leaf records with
// hierarchical paths.
type Walker struct {
	valueFields []string
	separator   string
	logger      zerolog.Logger
}

// NewWalker creates a walker using the configured value-field priority order
// and path separator.
func NewWalker(cfg config.ExtractConfig) *Walker {
	return &Walker{
		valueFields: cfg.ValueFields,
		separator:   cfg.PathSeparator,
		logger:      logging.GetLogger("extract.walker"),
	}
}

// Walk visits every instance node and returns the leaf settings found
// underneath, in document order. parentPath carries the breadcrumb
// accumulated so far; pass "" at the root.
func (w *Walker) Walk(instances []types.Node, parentPath string) []types.SettingRecord {
	var records []types.SettingRecord

	for _, node := range instances {
		id := node.GetString(fieldDefinitionID)
		value, wrapper, hasValue := w.extractValue(node)

		// A node holding a child collection and no scalar of its own is a
		// grouping container; containers and value-less nodes are never
		// recorded themselves.
		if id != "" && hasValue {
			records = append(records, types.SettingRecord{
				SettingID: id,
				Value:     value,
				Path:      w.joinPath(parentPath, id),
			})
		}

		// The path below this node includes its identifier when it has one.
		childPath := parentPath
		if id != "" {
			childPath = w.joinPath(parentPath, id)
		}

		// Generic children, either directly on the node or nested inside
		// the matched value wrapper (choice settings carry them there).
		records = append(records, w.Walk(childNodes(node.GetSlice(fieldChildren)), childPath)...)
		if wrapper != nil {
			records = append(records, w.Walk(childNodes(wrapper.GetSlice(fieldChildren)), childPath)...)
		}

		// Group collections nest one more level: each group element holds
		// its own children array. The path extension rule is the same.
		for _, g := range node.GetSlice(fieldGroupCollection) {
			group, ok := types.AsNode(g)
			if !ok {
				continue
			}
			records = append(records, w.Walk(childNodes(group.GetSlice(fieldChildren)), childPath)...)
		}

		// Scalar collections expand to one record per element with a
		// synthesized indexed id.
		if elems := node.GetSlice(fieldScalarCollect); elems != nil && id != "" {
			records = append(records, w.expandScalars(id, parentPath, elems)...)
		}
	}

	return records
}

// extractValue scans the value-field priority list in order and stops at the
// first field present on the node. If that field holds a single-value
// wrapper, it is unwrapped one level. Returns the wrapper (if any) so the
// caller can recurse into children it may carry.
func (w *Walker) extractValue(node types.Node) (value any, wrapper types.Node, ok bool) {
	for _, field := range w.valueFields {
		if !node.Has(field) {
			continue
		}
		raw := node[field]
		if types.IsScalar(raw) {
			return raw, nil, true
		}
		if wrap, isNode := types.AsNode(raw); isNode {
			if inner, has := wrap[fieldWrapperValue]; has && types.IsScalar(inner) {
				return inner, wrap, true
			}
			// First matching field wins even when it yields no scalar;
			// later fields are intentionally shadowed.
			return nil, wrap, false
		}
		return nil, nil, false
	}
	return nil, nil, false
}

func (w *Walker) expandScalars(baseID, parentPath string, elems []any) []types.SettingRecord {
	records := make([]types.SettingRecord, 0, len(elems))
	for i, elem := range elems {
		value := elem
		if wrap, ok := types.AsNode(elem); ok {
			value = wrap[fieldWrapperValue]
		}
		if !types.IsScalar(value) {
			w.logger.Debug().
				Str("setting", baseID).
				Int("index", i).
				Msg("Skipping non-scalar collection element")
			continue
		}
		indexed := fmt.Sprintf("%s[%d]", baseID, i)
		records = append(records, types.SettingRecord{
			SettingID: indexed,
			Value:     value,
			Path:      w.joinPath(parentPath, indexed),
		})
	}
	return records
}

func (w *Walker) joinPath(parent, id string) string {
	if parent == "" {
		return id
	}
	return parent + w.separator + id
}

// childNodes filters an instance array down to its object elements.
func childNodes(elems []any) []types.Node {
	var nodes []types.Node
	for _, elem := range elems {
		if node, ok := types.AsNode(elem); ok {
			nodes = append(nodes, node)
		}
	}
	return nodes
}
