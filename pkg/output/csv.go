package output

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/confsweep/confsweep/pkg/errors"
	"github.com/confsweep/confsweep/pkg/types"
)

// listSeparator joins the index-aligned occurrence lists inside one cell.
const listSeparator = "; "

func renderCSV(w io.Writer, entries []types.DuplicateEntry) error {
	cw := csv.NewWriter(w)

	header := []string{"settingId", "occurrenceCount", "hasConflict", "configNames", "referenceIds", "normalizedValues", "sourceFiles"}
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, errors.ErrReportWrite, "failed to write CSV header")
	}

	for _, e := range entries {
		row := []string{
			e.SettingID,
			strconv.Itoa(e.OccurrenceCount),
			strconv.FormatBool(e.HasConflict),
			strings.Join(e.ConfigNames, listSeparator),
			strings.Join(e.ReferenceIDs, listSeparator),
			strings.Join(e.Values, listSeparator),
			strings.Join(e.SourceFiles, listSeparator),
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrap(err, errors.ErrReportWrite, "failed to write CSV row")
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrap(err, errors.ErrReportWrite, "failed to flush CSV output")
	}
	return nil
}
