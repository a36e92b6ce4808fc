package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/domain"
)

func TestNewSpans_CopiesInput(t *testing.T) {
	items := []domain.FormatSpan{domain.Bold("a"), domain.Italic("b")}
	s := NewSpans(items)

	items[0] = domain.Italic("changed")

	assert.Equal(t, domain.Bold("a"), s.At(0))
	assert.Equal(t, 2, s.Len())
}

func TestSpans_Remove(t *testing.T) {
	s := NewSpans([]domain.FormatSpan{domain.Bold("a"), domain.Italic("b"), domain.Italic("c")})

	removed := s.Remove(1)

	assert.Equal(t, []domain.FormatSpan{domain.Bold("a"), domain.Italic("c")}, removed.Slice())
	assert.Equal(t, 3, s.Len(), "receiver must be unchanged")
	assert.Equal(t, domain.Italic("b"), s.At(1))
}

func TestSpans_Indices(t *testing.T) {
	s := NewSpans([]domain.FormatSpan{domain.Bold("a"), domain.Italic("b"), domain.Bold("c"), domain.Italic("d")})

	assert.Equal(t, []int{1, 3}, s.Indices(domain.SpanItalic))
	assert.Equal(t, []int{0, 2}, s.Indices(domain.SpanBold))
	assert.Empty(t, NewSpans(nil).Indices(domain.SpanItalic))
}

func TestSpans_SliceNeverNil(t *testing.T) {
	assert.NotNil(t, NewSpans(nil).Slice())
	assert.Equal(t, []domain.FormatSpan{}, NewSpans(nil).Slice())
}
