package extract

import (
	"github.com/confsweep/confsweep/pkg/types"
)

const (
	fieldSettings        = "settings"
	fieldSettingInstance = "settingInstance"
)

// CatalogAdapter handles settings-catalog exports: a top-level settings
// array whose entries wrap a nested setting-instance tree.
type CatalogAdapter struct {
	walker *Walker
}

func NewCatalogAdapter(walker *Walker) *CatalogAdapter {
	return &CatalogAdapter{walker: walker}
}

func (a *CatalogAdapter) Name() string { return "settings-catalog" }

func (a *CatalogAdapter) Detect(doc types.Node) bool {
	return doc.GetSlice(fieldSettings) != nil
}

func (a *CatalogAdapter) Extract(doc types.Node) []types.SettingRecord {
	var instances []types.Node
	for _, entry := range doc.GetSlice(fieldSettings) {
		node, ok := types.AsNode(entry)
		if !ok {
			continue
		}
		// Entries normally wrap the instance; some exports inline the
		// instance node directly.
		if instance := node.GetNode(fieldSettingInstance); instance != nil {
			instances = append(instances, instance)
		} else {
			instances = append(instances, node)
		}
	}
	return a.walker.Walk(instances, "")
}
