package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/confsweep/confsweep/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/confsweep/confsweep/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/confsweep/confsweep/internal/version.Date={{.Date}}
)
