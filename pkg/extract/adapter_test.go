package extract_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confsweep/confsweep/pkg/config"
	"github.com/confsweep/confsweep/pkg/extract"
	"github.com/confsweep/confsweep/pkg/testutil"
	"github.com/confsweep/confsweep/pkg/types"
)

func parseJSON(t *testing.T, data []byte) types.Node {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	return types.Node(doc)
}

func TestSelect(t *testing.T) {
	adapters := extract.Adapters(config.Default())

	tests := []struct {
		name string
		doc  types.Node
		want string
	}{
		{"settings catalog", parseJSON(t, testutil.SimpleCatalog("x", true)), "settings-catalog"},
		{"compliance policy", parseJSON(t, testutil.CompliancePolicy(map[string]any{"passcodeRequired": true})), "compliance-policy"},
		{"payload bundle", types.Node{"PayloadContent": []any{}}, "payload-bundle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := extract.Select(adapters, tt.doc)
			require.NotNil(t, adapter)
			assert.Equal(t, tt.want, adapter.Name())
		})
	}

	t.Run("unrecognized shape selects nothing", func(t *testing.T) {
		assert.Nil(t, extract.Select(adapters, types.Node{"foo": "bar"}))
	})
}

func TestCatalogAdapter(t *testing.T) {
	adapters := extract.Adapters(config.Default())

	t.Run("wrapped instances", func(t *testing.T) {
		doc := parseJSON(t, testutil.GroupedCatalog("group", "enableFileVault", true))
		adapter := extract.Select(adapters, doc)
		require.NotNil(t, adapter)

		records := adapter.Extract(doc)
		require.Len(t, records, 1)
		assert.Equal(t, "enableFileVault", records[0].SettingID)
		assert.Equal(t, "group/enableFileVault", records[0].Path)
	})

	t.Run("inline instance fallback", func(t *testing.T) {
		// Some exports put the instance node directly in the settings array.
		doc := types.Node{
			"settings": []any{
				map[string]any{
					"settingDefinitionId": "direct",
					"simpleSettingValue":  map[string]any{"value": "x"},
				},
			},
		}
		records := extract.Select(adapters, doc).Extract(doc)
		require.Len(t, records, 1)
		assert.Equal(t, "direct", records[0].SettingID)
	})
}

func TestComplianceAdapter(t *testing.T) {
	adapters := extract.Adapters(config.Default())

	doc := parseJSON(t, testutil.CompliancePolicy(map[string]any{
		"passcodeRequired":      true,
		"passcodeMinimumLength": float64(6),
	}))

	adapter := extract.Select(adapters, doc)
	require.NotNil(t, adapter)

	records := adapter.Extract(doc)
	require.Len(t, records, 2, "metadata fields must be excluded")

	byID := make(map[string]types.SettingRecord)
	for _, rec := range records {
		byID[rec.SettingID] = rec
	}
	assert.Equal(t, true, byID["passcodeRequired"].Value)
	assert.Equal(t, "passcodeRequired", byID["passcodeRequired"].Path)
	assert.Equal(t, float64(6), byID["passcodeMinimumLength"].Value)
	assert.NotContains(t, byID, "displayName")
	assert.NotContains(t, byID, "scheduledActionsForRule")
	assert.NotContains(t, byID, "@odata.type")
}

func TestPayloadAdapter(t *testing.T) {
	adapters := extract.Adapters(config.Default())

	doc := types.Node{
		"PayloadContent": []any{
			map[string]any{
				"PayloadType":        "com.apple.MCX.FileVault2",
				"PayloadVersion":     float64(1),
				"PayloadUUID":        "11111111-2222-3333-4444-555555555555",
				"PayloadDisplayName": "FileVault",
				"Enable":             "On",
				"Defer":              true,
			},
		},
	}

	adapter := extract.Select(adapters, doc)
	require.NotNil(t, adapter)

	records := adapter.Extract(doc)
	require.Len(t, records, 2)

	byID := make(map[string]types.SettingRecord)
	for _, rec := range records {
		byID[rec.SettingID] = rec
	}
	assert.Contains(t, byID, "com.apple.MCX.FileVault2.Enable")
	assert.Contains(t, byID, "com.apple.MCX.FileVault2.Defer")
	assert.Equal(t, "On", byID["com.apple.MCX.FileVault2.Enable"].Value)
}
