package extractor

import "github.com/mOrsExtension/LUBA-Headnotes/internal/core/domain"

// Spans is an immutable list of format spans. Consuming a span returns a
// new list and leaves the receiver untouched, so a unit's formatting is
// never modified by extraction.
type Spans struct {
	items []domain.FormatSpan
}

// NewSpans copies items into a new list.
func NewSpans(items []domain.FormatSpan) Spans {
	cp := make([]domain.FormatSpan, len(items))
	copy(cp, items)
	return Spans{items: cp}
}

// Len returns the number of spans.
func (s Spans) Len() int {
	return len(s.items)
}

// At returns the span at index i.
func (s Spans) At(i int) domain.FormatSpan {
	return s.items[i]
}

// Remove returns a new list without the span at index i.
func (s Spans) Remove(i int) Spans {
	out := make([]domain.FormatSpan, 0, len(s.items)-1)
	out = append(out, s.items[:i]...)
	out = append(out, s.items[i+1:]...)
	return Spans{items: out}
}

// Indices returns the positions of every span of the given type, in order.
func (s Spans) Indices(t domain.SpanType) []int {
	var idx []int
	for i, span := range s.items {
		if span.Type == t {
			idx = append(idx, i)
		}
	}
	return idx
}

// Slice returns a copy of the spans. It never returns nil.
func (s Spans) Slice() []domain.FormatSpan {
	out := make([]domain.FormatSpan, len(s.items))
	copy(out, s.items)
	return out
}
