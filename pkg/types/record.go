package types

// SettingRecord is one observed leaf setting occurrence in a source document.
// Records are created once per file pass and never mutated afterwards.
type SettingRecord struct {
	// SettingID is the stable identifier of the setting. For elements of a
	// scalar collection it carries an index suffix, e.g. "base[2]".
	SettingID string

	// Value is the raw value as read (string, bool, float64 or nil). Pure
	// container nodes never produce a record, so a nil Value means the
	// document genuinely declared null.
	Value any

	// Path is the breadcrumb of identifiers from the document root to this
	// leaf, joined with the configured separator.
	Path string

	// SourceFile is the originating document path, relative to the
	// analysis root. Attached by the pipeline, not by the adapters.
	SourceFile string

	// Metadata resolved for the source file.
	ReferenceID string
	ConfigName  string
	ConfigType  string
}

// Metadata describes a source document, resolved from a sibling descriptor
// file or derived from the filename.
type Metadata struct {
	ReferenceID string
	Name        string
	Type        string
}

// DuplicateEntry describes one setting id declared by two or more distinct
// source files. The four slices are index-aligned: element i of each
// describes the same representative occurrence.
type DuplicateEntry struct {
	SettingID       string   `json:"settingId"`
	OccurrenceCount int      `json:"occurrenceCount"`
	HasConflict     bool     `json:"hasConflict"`
	ConfigNames     []string `json:"configNames"`
	ReferenceIDs    []string `json:"referenceIds"`
	Values          []string `json:"normalizedValues"`
	SourceFiles     []string `json:"sourceFiles"`
}
