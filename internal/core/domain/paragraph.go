package domain

import "strings"

// Run is the smallest unit of styled text within a paragraph.
// Runs are produced by a document reader and never modified afterwards.
type Run struct {
	// Text is the run's raw text, whitespace preserved.
	Text string

	// Bold reports whether the run is rendered bold.
	Bold bool

	// Italic reports whether the run is rendered italic.
	Italic bool
}

// Paragraph is an ordered sequence of runs as decoded from a document.
type Paragraph struct {
	Runs []Run
}

// NewParagraph builds a paragraph from the given runs.
func NewParagraph(runs ...Run) Paragraph {
	return Paragraph{Runs: runs}
}

// PlainParagraph builds a paragraph holding a single unstyled run.
func PlainParagraph(text string) Paragraph {
	return Paragraph{Runs: []Run{{Text: text}}}
}

// Text returns the concatenated text of all runs.
func (p Paragraph) Text() string {
	if len(p.Runs) == 1 {
		return p.Runs[0].Text
	}
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}
