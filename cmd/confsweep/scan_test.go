package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confsweep/confsweep/pkg/testutil"
	"github.com/confsweep/confsweep/pkg/types"
)

func TestScanCommand_JSONReport(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "baseline.json"), testutil.SimpleCatalog("enableFileVault", true), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "override.json"), testutil.SimpleCatalog("enableFileVault", false), 0644))

	report := filepath.Join(t.TempDir(), "report.json")
	rootCmd.SetArgs([]string{"scan", root, "--output", "json", "--file", report})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(report)
	require.NoError(t, err)

	var entries []types.DuplicateEntry
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "enableFileVault", entries[0].SettingID)
	assert.Equal(t, 2, entries[0].OccurrenceCount)
	assert.True(t, entries[0].HasConflict)
}

func TestScanCommand_MissingRoot(t *testing.T) {
	rootCmd.SetArgs([]string{"scan", filepath.Join(t.TempDir(), "nope")})
	assert.Error(t, rootCmd.Execute())
}
