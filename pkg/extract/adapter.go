package extract

import (
	"github.com/confsweep/confsweep/pkg/config"
	"github.com/confsweep/confsweep/pkg/types"
)

// Adapter extracts leaf settings from one raw parsed document shape.
type Adapter interface {
	// Name identifies the adapter in logs and reports.
	Name() string

	// Detect reports whether this adapter recognizes the document shape.
	Detect(doc types.Node) bool

	// Extract returns the leaf settings found in the document. SourceFile
	// and metadata fields are left empty for the caller to fill in.
	Extract(doc types.Node) []types.SettingRecord
}

// Adapters returns the adapter set in detection order. Catalog detection
// runs first since catalog exports may also carry flat metadata fields that
// would otherwise look like a compliance policy.
func Adapters(cfg *config.Config) []Adapter {
	walker := NewWalker(cfg.Extract)
	return []Adapter{
		NewCatalogAdapter(walker),
		NewComplianceAdapter(cfg.Extract),
		NewPayloadAdapter(cfg.Extract),
	}
}

// Select returns the first adapter recognizing the document, or nil when no
// adapter matches. Unrecognized shapes are not an error; they simply
// contribute zero records.
func Select(adapters []Adapter, doc types.Node) Adapter {
	for _, a := range adapters {
		if a.Detect(doc) {
			return a
		}
	}
	return nil
}
