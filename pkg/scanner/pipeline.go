package scanner

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/confsweep/confsweep/pkg/config"
	"github.com/confsweep/confsweep/pkg/corpus"
	"github.com/confsweep/confsweep/pkg/errors"
	"github.com/confsweep/confsweep/pkg/extract"
	"github.com/confsweep/confsweep/pkg/logging"
	"github.com/confsweep/confsweep/pkg/metadata"
	"github.com/confsweep/confsweep/pkg/plist"
	"github.com/confsweep/confsweep/pkg/types"
)

// Result carries the outcome of a full scan.
type Result struct {
	Duplicates   []types.DuplicateEntry
	FilesScanned int
	SettingCount int
}

// Pipeline runs the whole analysis: discover files, extract settings in
// parallel, index them in file order, then detect duplicates sequentially.
type Pipeline struct {
	fs       types.FS
	cfg      *config.Config
	adapters []extract.Adapter
	resolver *metadata.Resolver
	logger   zerolog.Logger
}

func NewPipeline(fsys types.FS, cfg *config.Config) *Pipeline {
	return &Pipeline{
		fs:       fsys,
		cfg:      cfg,
		adapters: extract.Adapters(cfg),
		resolver: metadata.NewResolver(fsys, cfg.Metadata.DescriptorSuffix),
		logger:   logging.GetLogger("scanner.pipeline"),
	}
}

// Run executes the scan rooted at root. Extraction is fanned out over a
// bounded worker pool; per-file results land in order-indexed slots so the
// corpus index sees them in discovery order regardless of which worker
// finished first. Cancellation stops the run before the detection pass.
func (p *Pipeline) Run(ctx context.Context, root string) (*Result, error) {
	defer logging.LogDuration(time.Now(), "scan")

	files, err := Discover(p.fs, root, p.cfg.Scan.Extensions, p.cfg.Metadata.DescriptorSuffix)
	if err != nil {
		return nil, err
	}

	p.logger.Info().
		Str("root", root).
		Int("files", len(files)).
		Int("workers", p.cfg.Scan.Workers).
		Msg("Starting scan")

	results := make([][]types.SettingRecord, len(files))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < p.cfg.Scan.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = p.processFile(root, files[i])
			}
		}()
	}

feed:
	for i := range files {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrScanAborted, "scan cancelled before detection")
	}

	// Single accumulation point: append in discovery order.
	idx := corpus.NewIndex()
	total := 0
	for _, records := range results {
		idx.Add(records)
		total += len(records)
	}

	entries := corpus.Detect(idx)

	p.logger.Info().
		Int("settings", total).
		Int("duplicates", len(entries)).
		Msg("Scan complete")

	return &Result{
		Duplicates:   entries,
		FilesScanned: len(files),
		SettingCount: total,
	}, nil
}

// processFile extracts one file's settings. Parse failures warn and
// contribute zero records; unrecognized shapes are only logged at debug
// level since many structural documents legitimately match no adapter.
func (p *Pipeline) processFile(root, rel string) []types.SettingRecord {
	path := filepath.Join(root, rel)

	data, err := p.fs.ReadFile(path)
	if err != nil {
		p.logger.Warn().Err(err).Str("file", rel).Msg("Failed to read file, skipping")
		return nil
	}

	doc, err := parseDocument(rel, data)
	if err != nil {
		p.logger.Warn().Err(err).Str("file", rel).Msg("Failed to parse file, skipping")
		return nil
	}

	adapter := extract.Select(p.adapters, doc)
	if adapter == nil {
		p.logger.Debug().Str("file", rel).Msg("No adapter recognizes document shape")
		return nil
	}

	records := adapter.Extract(doc)

	meta := p.resolver.Resolve(path)
	for i := range records {
		records[i].SourceFile = rel
		records[i].ReferenceID = meta.ReferenceID
		records[i].ConfigName = meta.Name
		records[i].ConfigType = meta.Type
	}

	p.logger.Debug().
		Str("file", rel).
		Str("adapter", adapter.Name()).
		Int("records", len(records)).
		Msg("File processed")

	return records
}

func parseDocument(name string, data []byte) (types.Node, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".mobileconfig", ".plist":
		return plist.Parse(data)
	default:
		var doc map[string]any
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(err, errors.ErrDocParse, "invalid JSON document")
		}
		return types.Node(doc), nil
	}
}
