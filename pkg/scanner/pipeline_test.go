// Test Type: Integration Test
// Description: End-to-end pipeline tests over an in-memory filesystem.

package scanner_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confsweep/confsweep/pkg/config"
	sweeperr "github.com/confsweep/confsweep/pkg/errors"
	"github.com/confsweep/confsweep/pkg/scanner"
	"github.com/confsweep/confsweep/pkg/testutil"
)

func TestPipeline_EndToEnd(t *testing.T) {
	fs := testutil.NewMemoryFS()
	fs.WriteFile("root/macos-baseline.json", testutil.GroupedCatalog("diskEncryption", "enableFileVault", true))
	fs.WriteFile("root/device-compliance.json", testutil.CompliancePolicy(map[string]any{"passcodeRequired": true}))
	fs.WriteFile("root/macos-override.json", testutil.GroupedCatalog("diskEncryption", "enableFileVault", false))

	pipeline := scanner.NewPipeline(fs, config.Default())
	result, err := pipeline.Run(context.Background(), "root")
	require.NoError(t, err)

	assert.Equal(t, 3, result.FilesScanned)
	assert.Equal(t, 3, result.SettingCount)

	// enableFileVault conflicts across two files; passcodeRequired occurs
	// once and must not be reported.
	require.Len(t, result.Duplicates, 1)
	e := result.Duplicates[0]
	assert.Equal(t, "enableFileVault", e.SettingID)
	assert.Equal(t, 2, e.OccurrenceCount)
	assert.True(t, e.HasConflict)
	assert.ElementsMatch(t, []string{"macos-baseline.json", "macos-override.json"}, e.SourceFiles)
	assert.ElementsMatch(t, []string{"true", "false"}, e.Values)
}

func TestPipeline_DescriptorMetadataAttached(t *testing.T) {
	fs := testutil.NewMemoryFS()
	fs.WriteFile("root/a.json", testutil.SimpleCatalog("screenLockTimeout", float64(300)))
	fs.WriteFile("root/a.meta.json", []byte(`{"ReferenceId": "ref-a", "Name": "Profile A", "Type": "SettingsCatalog"}`))
	fs.WriteFile("root/b.json", testutil.SimpleCatalog("screenLockTimeout", float64(600)))

	pipeline := scanner.NewPipeline(fs, config.Default())
	result, err := pipeline.Run(context.Background(), "root")
	require.NoError(t, err)

	require.Len(t, result.Duplicates, 1)
	e := result.Duplicates[0]
	assert.True(t, e.HasConflict)
	assert.Equal(t, []string{"Profile A", "b"}, e.ConfigNames)
	assert.Equal(t, []string{"ref-a", "b"}, e.ReferenceIDs)
	assert.Equal(t, []string{"300", "600"}, e.Values)
}

func TestPipeline_MalformedFileIsSkipped(t *testing.T) {
	fs := testutil.NewMemoryFS()
	fs.WriteFile("root/good.json", testutil.SimpleCatalog("x", true))
	fs.WriteFile("root/bad.json", []byte(`{definitely not json`))
	fs.WriteFile("root/bad.mobileconfig", []byte(`<plist><dict><key>a</key`))

	pipeline := scanner.NewPipeline(fs, config.Default())
	result, err := pipeline.Run(context.Background(), "root")
	require.NoError(t, err, "parse failures are warnings, not errors")

	assert.Equal(t, 3, result.FilesScanned)
	assert.Equal(t, 1, result.SettingCount)
	assert.Empty(t, result.Duplicates)
}

func TestPipeline_UnrecognizedShapeContributesNothing(t *testing.T) {
	fs := testutil.NewMemoryFS()
	fs.WriteFile("root/unrelated.json", []byte(`{"some": "document"}`))

	pipeline := scanner.NewPipeline(fs, config.Default())
	result, err := pipeline.Run(context.Background(), "root")
	require.NoError(t, err)
	assert.Equal(t, 0, result.SettingCount)
}

func TestPipeline_PayloadBundleCorrelatesWithCatalog(t *testing.T) {
	fs := testutil.NewMemoryFS()
	fs.WriteFile("root/profile.mobileconfig", testutil.PayloadPlist("com.apple.screensaver", map[string]any{
		"askForPassword": true,
	}))
	fs.WriteFile("root/other.mobileconfig", testutil.PayloadPlist("com.apple.screensaver", map[string]any{
		"askForPassword": true,
	}))

	pipeline := scanner.NewPipeline(fs, config.Default())
	result, err := pipeline.Run(context.Background(), "root")
	require.NoError(t, err)

	require.Len(t, result.Duplicates, 1)
	e := result.Duplicates[0]
	assert.Equal(t, "com.apple.screensaver.askForPassword", e.SettingID)
	assert.False(t, e.HasConflict)
}

func TestPipeline_CancelledBeforeDetection(t *testing.T) {
	fs := testutil.NewMemoryFS()
	fs.WriteFile("root/a.json", testutil.SimpleCatalog("x", true))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pipeline := scanner.NewPipeline(fs, config.Default())
	_, err := pipeline.Run(ctx, "root")
	require.Error(t, err)
	assert.True(t, sweeperr.IsErrorCode(err, sweeperr.ErrScanAborted))
}

func TestPipeline_MissingRoot(t *testing.T) {
	pipeline := scanner.NewPipeline(testutil.NewMemoryFS(), config.Default())
	_, err := pipeline.Run(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, sweeperr.IsErrorCode(err, sweeperr.ErrRootNotFound))
}
