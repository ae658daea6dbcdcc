package output_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confsweep/confsweep/pkg/output"
	"github.com/confsweep/confsweep/pkg/types"
)

func sampleEntries() []types.DuplicateEntry {
	return []types.DuplicateEntry{
		{
			SettingID:       "enableFileVault",
			OccurrenceCount: 2,
			HasConflict:     true,
			ConfigNames:     []string{"Baseline", "Override"},
			ReferenceIDs:    []string{"ref-1", "ref-2"},
			Values:          []string{"true", "false"},
			SourceFiles:     []string{"baseline.json", "override.json"},
		},
	}
}

func TestRender_Console(t *testing.T) {
	var buf bytes.Buffer
	err := output.Render(&buf, output.FormatConsole, sampleEntries(), output.Options{NoColor: true})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "enableFileVault")
	assert.Contains(t, out, "CONFLICT")
	assert.Contains(t, out, "baseline.json = true")
	assert.Contains(t, out, "override.json = false")
	assert.Contains(t, out, "1 duplicated setting(s), 1 with conflicting values")
}

func TestRender_ConsoleEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := output.Render(&buf, output.FormatConsole, nil, output.Options{NoColor: true})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No duplicate settings found")
}

func TestRender_CSV(t *testing.T) {
	var buf bytes.Buffer
	err := output.Render(&buf, output.FormatCSV, sampleEntries(), output.Options{})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "settingId,occurrenceCount,hasConflict,configNames,referenceIds,normalizedValues,sourceFiles", lines[0])
	assert.Contains(t, lines[1], "enableFileVault,2,true")
	assert.Contains(t, lines[1], "true; false")
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := output.Render(&buf, output.FormatJSON, sampleEntries(), output.Options{})
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)

	// The wire field set is part of the core's contract.
	for _, field := range []string{"settingId", "occurrenceCount", "hasConflict", "configNames", "referenceIds", "normalizedValues", "sourceFiles"} {
		assert.Contains(t, decoded[0], field)
	}
	assert.Equal(t, float64(2), decoded[0]["occurrenceCount"])
	assert.Equal(t, true, decoded[0]["hasConflict"])
}

func TestRender_JSONEmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.Render(&buf, output.FormatJSON, nil, output.Options{}))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := output.Render(&buf, output.Format("xml"), sampleEntries(), output.Options{})
	require.Error(t, err)
}
