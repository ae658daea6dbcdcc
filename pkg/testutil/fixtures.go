package testutil

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// SimpleCatalog returns a settings-catalog document declaring one simple
// setting with the given definition id and value.
func SimpleCatalog(settingID string, value any) []byte {
	v, err := json.Marshal(value)
	if err != nil {
		panic(err)
	}
	return []byte(fmt.Sprintf(`{
  "name": "fixture",
  "settings": [
    {
      "settingInstance": {
        "settingDefinitionId": %q,
        "simpleSettingValue": {"value": %s}
      }
    }
  ]
}`, settingID, v))
}

// GroupedCatalog returns a settings-catalog document nesting one simple
// setting under a group container, so the leaf path crosses the group id.
func GroupedCatalog(groupID, settingID string, value any) []byte {
	v, err := json.Marshal(value)
	if err != nil {
		panic(err)
	}
	return []byte(fmt.Sprintf(`{
  "settings": [
    {
      "settingInstance": {
        "settingDefinitionId": %q,
        "groupSettingCollectionValue": [
          {
            "children": [
              {
                "settingDefinitionId": %q,
                "simpleSettingValue": {"value": %s}
              }
            ]
          }
        ]
      }
    }
  ]
}`, groupID, settingID, v))
}

// CompliancePolicy returns a flat compliance-policy document carrying the
// rule-scheduling marker plus the given setting properties.
func CompliancePolicy(props map[string]any) []byte {
	doc := map[string]any{
		"@odata.type":             "#fixture.compliancePolicy",
		"id":                      "00000000-0000-0000-0000-000000000000",
		"displayName":             "fixture policy",
		"scheduledActionsForRule": []any{},
	}
	for k, v := range props {
		doc[k] = v
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		panic(err)
	}
	return data
}

// PayloadPlist returns an XML property list with one payload of the given
// type carrying the given properties.
func PayloadPlist(payloadType string, props map[string]any) []byte {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0">
<dict>
  <key>PayloadContent</key>
  <array>
    <dict>
      <key>PayloadType</key>
      <string>` + payloadType + `</string>
      <key>PayloadVersion</key>
      <integer>1</integer>
`)
	for _, k := range keys {
		b.WriteString("      <key>" + k + "</key>\n")
		b.WriteString("      " + plistValue(props[k]) + "\n")
	}
	b.WriteString(`    </dict>
  </array>
  <key>PayloadDisplayName</key>
  <string>fixture profile</string>
</dict>
</plist>
`)
	return []byte(b.String())
}

func plistValue(v any) string {
	switch t := v.(type) {
	case bool:
		if t {
			return "<true/>"
		}
		return "<false/>"
	case int:
		return fmt.Sprintf("<integer>%d</integer>", t)
	case float64:
		return fmt.Sprintf("<real>%g</real>", t)
	case string:
		return "<string>" + t + "</string>"
	default:
		panic(fmt.Sprintf("unsupported plist fixture value %T", v))
	}
}
