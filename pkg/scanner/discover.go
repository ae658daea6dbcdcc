// Package scanner walks the analysis root, runs extraction over every
// candidate artifact and feeds the corpus index for detection.
package scanner

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/confsweep/confsweep/pkg/errors"
	"github.com/confsweep/confsweep/pkg/types"
)

// Discover returns the candidate artifact paths under root, relative to
// root, in a deterministic walk order. Descriptor files are excluded; they
// feed the metadata resolver, not extraction.
func Discover(fsys types.FS, root string, extensions []string, descriptorSuffix string) ([]string, error) {
	info, err := fsys.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRootNotFound, "analysis root %s does not exist", root)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrRootNotFound, "analysis root %s is not a directory", root)
	}

	extSet := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		extSet[strings.ToLower(ext)] = struct{}{}
	}

	var files []string
	var walk func(dir string) error
	walk = func(dir string) error {
		entries, err := fsys.ReadDir(dir)
		if err != nil {
			return errors.Wrapf(err, errors.ErrDocRead, "failed to read directory %s", dir)
		}
		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			if entry.IsDir() {
				if err := walk(path); err != nil {
					return err
				}
				continue
			}
			if strings.HasSuffix(entry.Name(), descriptorSuffix) {
				continue
			}
			if _, ok := extSet[strings.ToLower(filepath.Ext(entry.Name()))]; !ok {
				continue
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				rel = path
			}
			files = append(files, rel)
		}
		return nil
	}

	if err := walk(root); err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
