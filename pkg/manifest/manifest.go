// Package manifest reads the artifact inventory file describing what a
// directory of exported configurations is supposed to contain.
package manifest

import (
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/confsweep/confsweep/pkg/errors"
	"github.com/confsweep/confsweep/pkg/types"
)

// DefaultFileName is the manifest file looked up under the analysis root.
const DefaultFileName = "manifest.yaml"

// Entry describes one artifact the manifest declares.
type Entry struct {
	Name        string `yaml:"name"`
	File        string `yaml:"file"`
	Type        string `yaml:"type"`
	ReferenceID string `yaml:"referenceId"`
}

// Manifest is the declared inventory of an analysis root.
type Manifest struct {
	Name    string  `yaml:"name"`
	Entries []Entry `yaml:"entries"`
}

// Load reads the manifest under root. A missing manifest returns
// ErrManifestNotFound so callers can decide whether that is fatal.
func Load(fs types.FS, root string) (*Manifest, error) {
	path := filepath.Join(root, DefaultFileName)

	if _, err := fs.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestNotFound, "no manifest at %s", path)
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestLoad, "failed to read %s", path)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestLoad, "failed to parse %s", path)
	}

	return &m, nil
}
