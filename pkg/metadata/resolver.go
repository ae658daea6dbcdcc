// Package metadata resolves human-facing descriptors for source documents.
package metadata

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/confsweep/confsweep/pkg/logging"
	"github.com/confsweep/confsweep/pkg/types"
)

// descriptor mirrors the sibling descriptor file layout.
type descriptor struct {
	ReferenceID string `json:"ReferenceId"`
	Name        string `json:"Name"`
	Type        string `json:"Type"`
}

// Resolver looks up a sibling descriptor for each artifact, falling back to
// filename-derived metadata. Resolution never fails the run.
type Resolver struct {
	fs     types.FS
	suffix string
	logger zerolog.Logger
}

// NewResolver creates a resolver reading descriptors named
// "<base><suffix>" next to each artifact.
func NewResolver(fs types.FS, suffix string) *Resolver {
	return &Resolver{
		fs:     fs,
		suffix: suffix,
		logger: logging.GetLogger("metadata.resolver"),
	}
}

// Resolve returns the metadata for the artifact at path. A missing or
// unparsable descriptor silently yields the filename fallback.
func (r *Resolver) Resolve(path string) types.Metadata {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	descriptorPath := base + r.suffix

	data, err := r.fs.ReadFile(descriptorPath)
	if err != nil {
		r.logger.Debug().Str("path", descriptorPath).Msg("No descriptor, using filename fallback")
		return r.fallback(path)
	}

	var d descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		r.logger.Debug().Err(err).Str("path", descriptorPath).Msg("Unparsable descriptor, using filename fallback")
		return r.fallback(path)
	}

	meta := types.Metadata{ReferenceID: d.ReferenceID, Name: d.Name, Type: d.Type}
	if meta.ReferenceID == "" || meta.Name == "" {
		fb := r.fallback(path)
		if meta.ReferenceID == "" {
			meta.ReferenceID = fb.ReferenceID
		}
		if meta.Name == "" {
			meta.Name = fb.Name
		}
	}
	if meta.Type == "" {
		meta.Type = "Unknown"
	}
	return meta
}

func (r *Resolver) fallback(path string) types.Metadata {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return types.Metadata{
		ReferenceID: name,
		Name:        name,
		Type:        "Unknown",
	}
}
