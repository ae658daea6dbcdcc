package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sweeperr "github.com/confsweep/confsweep/pkg/errors"
	"github.com/confsweep/confsweep/pkg/scanner"
	"github.com/confsweep/confsweep/pkg/testutil"
)

func TestDiscover(t *testing.T) {
	extensions := []string{".json", ".mobileconfig", ".plist"}

	t.Run("filters by extension and skips descriptors", func(t *testing.T) {
		fs := testutil.NewMemoryFS()
		fs.WriteFile("root/catalog.json", []byte(`{}`))
		fs.WriteFile("root/catalog.meta.json", []byte(`{}`))
		fs.WriteFile("root/profile.mobileconfig", []byte(``))
		fs.WriteFile("root/notes.txt", []byte(``))
		fs.WriteFile("root/nested/policy.json", []byte(`{}`))

		files, err := scanner.Discover(fs, "root", extensions, ".meta.json")
		require.NoError(t, err)
		assert.Equal(t, []string{"catalog.json", "nested/policy.json", "profile.mobileconfig"}, files)
	})

	t.Run("missing root is fatal", func(t *testing.T) {
		fs := testutil.NewMemoryFS()

		_, err := scanner.Discover(fs, "nowhere", extensions, ".meta.json")
		require.Error(t, err)
		assert.True(t, sweeperr.IsErrorCode(err, sweeperr.ErrRootNotFound))
	})
}
