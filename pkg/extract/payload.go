package extract

import (
	"sort"

	"github.com/confsweep/confsweep/pkg/config"
	"github.com/confsweep/confsweep/pkg/types"
)

const (
	fieldPayloadContent = "PayloadContent"
	fieldPayloadType    = "PayloadType"
)

// PayloadAdapter handles property-list payload bundles: each entry of the
// payload-content array declares a payload type, and every non-metadata
// property of the entry is a setting keyed "<PayloadType>.<property>".
type PayloadAdapter struct {
	excluded map[string]struct{}
}

func NewPayloadAdapter(cfg config.ExtractConfig) *PayloadAdapter {
	excluded := make(map[string]struct{}, len(cfg.PayloadExcluded))
	for _, key := range cfg.PayloadExcluded {
		excluded[key] = struct{}{}
	}
	return &PayloadAdapter{excluded: excluded}
}

func (a *PayloadAdapter) Name() string { return "payload-bundle" }

func (a *PayloadAdapter) Detect(doc types.Node) bool {
	return doc.GetSlice(fieldPayloadContent) != nil
}

func (a *PayloadAdapter) Extract(doc types.Node) []types.SettingRecord {
	var records []types.SettingRecord
	for _, entry := range doc.GetSlice(fieldPayloadContent) {
		payload, ok := types.AsNode(entry)
		if !ok {
			continue
		}
		payloadType := payload.GetString(fieldPayloadType)

		keys := make([]string, 0, len(payload))
		for key := range payload {
			if _, skip := a.excluded[key]; skip {
				continue
			}
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			id := key
			if payloadType != "" {
				id = payloadType + "." + key
			}
			records = append(records, types.SettingRecord{
				SettingID: id,
				Value:     payload[key],
				Path:      id,
			})
		}
	}
	return records
}
