package driven

// CitationScanner finds one kind of cross-reference citation in text.
// Scanners are pure: the same text always yields the same citations.
type CitationScanner interface {
	// Name returns the scanner name used in configuration (e.g., "ors").
	Name() string

	// Scan returns the de-duplicated citations found in text, sorted.
	// It never returns nil.
	Scan(text string) []string
}
