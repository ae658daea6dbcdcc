package corpus

import (
	"sort"

	"github.com/confsweep/confsweep/pkg/extract"
	"github.com/confsweep/confsweep/pkg/logging"
	"github.com/confsweep/confsweep/pkg/types"
)

// Detect derives the duplicate list from a fully built index. A setting
// counts as duplicated only when it is declared by two or more distinct
// source files; repeats within one file (array expansion) do not qualify.
//
// Entries are sorted by occurrence count descending. The sort is stable over
// bucket insertion order, which makes output deterministic for a given
// file-processing order.
func Detect(idx *Index) []types.DuplicateEntry {
	logger := logging.GetLogger("corpus.detect")

	idx.mu.Lock()
	defer idx.mu.Unlock()

	var entries []types.DuplicateEntry
	for _, id := range idx.order {
		records := idx.records(id)
		if len(records) < 2 {
			continue
		}

		// One representative per distinct file, first occurrence wins, so
		// intra-file repeats are not double-counted.
		seen := make(map[string]struct{})
		var reps []types.SettingRecord
		for _, rec := range records {
			if _, dup := seen[rec.SourceFile]; dup {
				continue
			}
			seen[rec.SourceFile] = struct{}{}
			reps = append(reps, rec)
		}
		if len(reps) < 2 {
			continue
		}

		entry := types.DuplicateEntry{
			SettingID:       id,
			OccurrenceCount: len(reps),
			ConfigNames:     make([]string, 0, len(reps)),
			ReferenceIDs:    make([]string, 0, len(reps)),
			Values:          make([]string, 0, len(reps)),
			SourceFiles:     make([]string, 0, len(reps)),
		}

		distinct := make(map[string]struct{}, len(reps))
		for _, rep := range reps {
			normalized := extract.Normalize(rep.Value)
			distinct[normalized] = struct{}{}
			entry.ConfigNames = append(entry.ConfigNames, rep.ConfigName)
			entry.ReferenceIDs = append(entry.ReferenceIDs, rep.ReferenceID)
			entry.Values = append(entry.Values, normalized)
			entry.SourceFiles = append(entry.SourceFiles, rep.SourceFile)
		}
		entry.HasConflict = len(distinct) > 1

		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].OccurrenceCount > entries[j].OccurrenceCount
	})

	logger.Debug().
		Int("settings", len(idx.buckets)).
		Int("duplicates", len(entries)).
		Msg("Duplicate detection complete")

	return entries
}
