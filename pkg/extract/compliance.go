package extract

import (
	"sort"

	"github.com/confsweep/confsweep/pkg/config"
	"github.com/confsweep/confsweep/pkg/types"
)

// fieldRuleScheduling marks a document as a compliance policy.
const fieldRuleScheduling = "scheduledActionsForRule"

// ComplianceAdapter handles flat compliance policies: every top-level
// property outside the metadata exclusion set is itself a setting.
type ComplianceAdapter struct {
	excluded map[string]struct{}
}

func NewComplianceAdapter(cfg config.ExtractConfig) *ComplianceAdapter {
	excluded := make(map[string]struct{}, len(cfg.ComplianceExcluded))
	for _, key := range cfg.ComplianceExcluded {
		excluded[key] = struct{}{}
	}
	return &ComplianceAdapter{excluded: excluded}
}

func (a *ComplianceAdapter) Name() string { return "compliance-policy" }

func (a *ComplianceAdapter) Detect(doc types.Node) bool {
	return doc.Has(fieldRuleScheduling)
}

func (a *ComplianceAdapter) Extract(doc types.Node) []types.SettingRecord {
	keys := make([]string, 0, len(doc))
	for key := range doc {
		if _, skip := a.excluded[key]; skip {
			continue
		}
		keys = append(keys, key)
	}
	// Map iteration order is random; sort for deterministic record order.
	sort.Strings(keys)

	records := make([]types.SettingRecord, 0, len(keys))
	for _, key := range keys {
		records = append(records, types.SettingRecord{
			SettingID: key,
			Value:     doc[key],
			Path:      key,
		})
	}
	return records
}
