// Package corpus accumulates setting records across the whole file set and
// derives cross-file duplicate and conflict entries from them.
package corpus

import (
	"sync"

	"github.com/confsweep/confsweep/pkg/types"
)

// Index maps setting ids to their occurrences in file-processing order. It
// is the single accumulation point of the pipeline: extraction fans out per
// file, appends are serialized here, and detection runs once the whole
// corpus is indexed.
type Index struct {
	mu      sync.Mutex
	buckets map[string][]types.SettingRecord
	order   []string
}

func NewIndex() *Index {
	return &Index{buckets: make(map[string][]types.SettingRecord)}
}

// Add appends records to their setting-id buckets. Bucket creation order is
// preserved so detection output is deterministic for a given input order.
func (idx *Index) Add(records []types.SettingRecord) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	for _, rec := range records {
		if _, seen := idx.buckets[rec.SettingID]; !seen {
			idx.order = append(idx.order, rec.SettingID)
		}
		idx.buckets[rec.SettingID] = append(idx.buckets[rec.SettingID], rec)
	}
}

// Len returns the number of distinct setting ids indexed.
func (idx *Index) Len() int {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return len(idx.buckets)
}

// records returns the bucket for id. Callers must treat the slice as
// read-only.
func (idx *Index) records(id string) []types.SettingRecord {
	return idx.buckets[id]
}
