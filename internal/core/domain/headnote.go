package domain

// SpanType identifies the style of a FormatSpan.
type SpanType string

// Supported span styles. A run that is both bold and italic yields one
// span of each type; there is no combined type.
const (
	SpanBold   SpanType = "bold"
	SpanItalic SpanType = "italic"
)

// String returns the string representation.
func (t SpanType) String() string {
	return string(t)
}

// FormatSpan is a maximal consolidation of adjacent same-style runs
// within one paragraph, trimmed at both ends.
type FormatSpan struct {
	Type SpanType `json:"type"`
	Text string   `json:"text"`
}

// Bold creates a bold span.
func Bold(text string) FormatSpan {
	return FormatSpan{Type: SpanBold, Text: text}
}

// Italic creates an italic span.
func Italic(text string) FormatSpan {
	return FormatSpan{Type: SpanItalic, Text: text}
}

// HeadnoteUnit groups the paragraphs of one numbered headnote.
// It is built by the segmenter and treated as read-only afterwards.
type HeadnoteUnit struct {
	// Number is the heading number without trailing separator, e.g. "1.2.3".
	Number string

	// RawText is the trimmed text of every paragraph joined by single spaces.
	RawText string

	// Formatting holds the spans of every paragraph in paragraph order,
	// bold spans before italic spans within each paragraph.
	Formatting []FormatSpan
}

// HeadnoteRecord is the structured result of extracting one headnote.
type HeadnoteRecord struct {
	Headnote   string       `json:"headnote"`
	Topic      string       `json:"topic"`
	Summary    string       `json:"summary"`
	CaseName   string       `json:"case_name"`
	Citation   string       `json:"citation"`
	Year       *int         `json:"year"`
	ORSCites   []string     `json:"ors_cites"`
	OARCites   []string     `json:"oar_cites"`
	CaseCites  []string     `json:"case_cites"`
	Formatting []FormatSpan `json:"formatting"`
	ErrorList  []string     `json:"error_list"`
	Index      string       `json:"index"`
}

// HasWarnings reports whether any extraction heuristic flagged the record.
func (r *HeadnoteRecord) HasWarnings() bool {
	return len(r.ErrorList) > 0
}

// UnitFailure records a headnote whose extraction failed outright.
type UnitFailure struct {
	Index   int    `json:"index"`
	Error   string `json:"error"`
	Preview string `json:"preview"`
}

// previewLength is the number of characters kept in a failure preview.
const previewLength = 200

// Preview returns the first 200 characters of text followed by an ellipsis.
func Preview(text string) string {
	runes := []rune(text)
	if len(runes) > previewLength {
		runes = runes[:previewLength]
	}
	return string(runes) + "..."
}
