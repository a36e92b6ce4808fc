package domain

import "fmt"

// CitationScope selects the text that cross-reference scanners read.
type CitationScope string

// Available citation scopes.
const (
	// ScopeSummary scans only the summary between topic and case name.
	ScopeSummary CitationScope = "summary"

	// ScopeRawText scans the headnote's full raw text.
	ScopeRawText CitationScope = "raw_text"
)

// IsValid returns true if the scope is recognised.
func (s CitationScope) IsValid() bool {
	return s == ScopeSummary || s == ScopeRawText
}

// String returns the string representation.
func (s CitationScope) String() string {
	return string(s)
}

// Default setting values.
const (
	DefaultWorkers  = 4
	DefaultMetaFile = "Headnotes_Results.json"
)

// DefaultScanners lists the cross-reference scanners enabled by default.
var DefaultScanners = []string{"ors", "oar", "case"}

// Settings holds runtime configuration for a parse run.
type Settings struct {
	// Workers bounds concurrent unit extraction. 1 extracts sequentially.
	Workers int

	// CitationScope selects summary or raw text for cross references.
	CitationScope CitationScope

	// Scanners names the cross-reference scanners to run.
	Scanners []string

	// OutputDir is where record and metadata files are written.
	OutputDir string

	// MetaFile is the metadata file name; empty disables it.
	MetaFile string

	// DBDir is the directory holding the SQLite database.
	// Empty means the default location.
	DBDir string
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	scanners := make([]string, len(DefaultScanners))
	copy(scanners, DefaultScanners)
	return Settings{
		Workers:       DefaultWorkers,
		CitationScope: ScopeSummary,
		Scanners:      scanners,
		OutputDir:     ".",
		MetaFile:      DefaultMetaFile,
	}
}

// Validate checks the settings for values the pipeline cannot use.
func (s Settings) Validate() error {
	if s.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidInput, s.Workers)
	}
	if !s.CitationScope.IsValid() {
		return fmt.Errorf("%w: unknown citation scope %q", ErrInvalidInput, s.CitationScope)
	}
	return nil
}
