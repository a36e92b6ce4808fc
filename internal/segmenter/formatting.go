package segmenter

import (
	"strings"

	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/domain"
)

// ConsolidateFormatting merges adjacent same-style runs of a paragraph into
// FormatSpans. Bold and italic are scanned independently, so a run that is
// both yields one span of each type. All bold spans precede all italic
// spans in the result. Runs with empty text neither extend nor break a span.
func ConsolidateFormatting(p domain.Paragraph) []domain.FormatSpan {
	var spans []domain.FormatSpan
	spans = appendStyled(spans, p.Runs, domain.SpanBold, func(r domain.Run) bool { return r.Bold })
	spans = appendStyled(spans, p.Runs, domain.SpanItalic, func(r domain.Run) bool { return r.Italic })
	return spans
}

// appendStyled performs one linear scan for a single style.
func appendStyled(spans []domain.FormatSpan, runs []domain.Run, typ domain.SpanType, styled func(domain.Run) bool) []domain.FormatSpan {
	var acc strings.Builder

	flush := func() {
		if text := strings.TrimSpace(acc.String()); text != "" {
			spans = append(spans, domain.FormatSpan{Type: typ, Text: text})
		}
		acc.Reset()
	}

	for _, r := range runs {
		if r.Text == "" {
			continue
		}
		if styled(r) {
			// Raw text: inner spacing between runs is significant.
			acc.WriteString(r.Text)
			continue
		}
		flush()
	}
	flush()

	return spans
}
