package output

import (
	"encoding/json"
	"io"

	"github.com/confsweep/confsweep/pkg/errors"
	"github.com/confsweep/confsweep/pkg/types"
)

func renderJSON(w io.Writer, entries []types.DuplicateEntry) error {
	// An empty report is an empty array, not null.
	if entries == nil {
		entries = []types.DuplicateEntry{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return errors.Wrap(err, errors.ErrReportWrite, "failed to encode JSON report")
	}
	return nil
}
