package config

import (
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	sweeperr "github.com/confsweep/confsweep/pkg/errors"
	"github.com/confsweep/confsweep/pkg/types"
)

// RootConfigFile is looked up inside the analysis root and overlays the
// resolved configuration for that scan only. Useful when one corpus needs a
// different descriptor suffix or exclusion set.
const RootConfigFile = ".confsweep.toml"

// ApplyRootOverlay merges the analysis root's config file into cfg. A
// missing file is not an error; a malformed one is.
func ApplyRootOverlay(cfg *Config, fsys types.FS, root string) error {
	path := filepath.Join(root, RootConfigFile)

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return sweeperr.Wrapf(err, sweeperr.ErrConfigParse, "failed to parse %s", path)
	}

	if cfg.Scan.Workers < 1 {
		cfg.Scan.Workers = 1
	}
	return nil
}
