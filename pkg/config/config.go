// Package config loads confsweep's layered configuration: embedded defaults,
// then an optional user config file, then CONFSWEEP_* environment variables.
package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	sweeperr "github.com/confsweep/confsweep/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config holds the resolved settings the pipeline and adapters consume.
type Config struct {
	Scan     ScanConfig     `koanf:"scan" toml:"scan"`
	Extract  ExtractConfig  `koanf:"extract" toml:"extract"`
	Metadata MetadataConfig `koanf:"metadata" toml:"metadata"`
}

type ScanConfig struct {
	Extensions []string `koanf:"extensions" toml:"extensions"`
	Workers    int      `koanf:"workers" toml:"workers"`
}

type ExtractConfig struct {
	PathSeparator      string   `koanf:"path_separator" toml:"path_separator"`
	ValueFields        []string `koanf:"value_fields" toml:"value_fields"`
	ComplianceExcluded []string `koanf:"compliance_excluded" toml:"compliance_excluded"`
	PayloadExcluded    []string `koanf:"payload_excluded" toml:"payload_excluded"`
}

type MetadataConfig struct {
	DescriptorSuffix string `koanf:"descriptor_suffix" toml:"descriptor_suffix"`
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load resolves configuration in order: embedded defaults, user config file
// (if present), environment overrides.
func Load() (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, sweeperr.Wrap(err, sweeperr.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config if it exists
	userConfig := filepath.Join(xdg.ConfigHome, "confsweep", "config.toml")
	if _, err := os.Stat(userConfig); err == nil {
		if err := k.Load(file.Provider(userConfig), toml.Parser()); err != nil {
			return nil, sweeperr.Wrapf(err, sweeperr.ErrConfigParse, "failed to load user config from %s", userConfig)
		}
	}

	// 3. Environment overrides: CONFSWEEP_SCAN_WORKERS=8 -> scan.workers
	if err := k.Load(env.Provider("CONFSWEEP_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "CONFSWEEP_")), "_", ".", 1)
	}), nil); err != nil {
		return nil, sweeperr.Wrap(err, sweeperr.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, sweeperr.Wrap(err, sweeperr.ErrConfigParse, "failed to unmarshal configuration")
	}

	if cfg.Scan.Workers < 1 {
		cfg.Scan.Workers = 1
	}

	return &cfg, nil
}

// Default returns the embedded defaults without touching the filesystem or
// environment. Used by tests and by callers that need a baseline.
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		// The embedded defaults are compiled in; a parse failure is a bug.
		panic(err)
	}
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		panic(err)
	}
	return &cfg
}
