package segmenter

import (
	"regexp"
	"strings"

	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/domain"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/logger"
)

// headingPattern matches a numeric heading such as "1.2.3" at the start of
// a paragraph. The trailing non-digit stands in for a lookahead and is not
// part of the captured number.
var headingPattern = regexp.MustCompile(`^((?:\d{1,2}\.)+\d{0,2})\D`)

// MatchHeading reports whether text starts a new headnote and returns the
// heading number without its trailing separator.
func MatchHeading(text string) (string, bool) {
	m := headingPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSuffix(m[1], "."), true
}

// Segment groups paragraphs into headnote units. Paragraphs before the first
// heading are dropped and blank paragraphs are skipped. The heading
// paragraph is itself the first paragraph of its unit.
func Segment(paragraphs []domain.Paragraph) []domain.HeadnoteUnit {
	var (
		units   []domain.HeadnoteUnit
		current *domain.HeadnoteUnit
		dropped int
	)

	for _, p := range paragraphs {
		text := strings.TrimSpace(p.Text())
		if text == "" {
			continue
		}

		if number, ok := MatchHeading(text); ok {
			if current != nil {
				units = append(units, *current)
			}
			current = &domain.HeadnoteUnit{
				Number:     number,
				RawText:    text,
				Formatting: ConsolidateFormatting(p),
			}
			continue
		}

		if current == nil {
			dropped++
			continue
		}
		current.RawText += " " + text
		current.Formatting = append(current.Formatting, ConsolidateFormatting(p)...)
	}

	if current != nil {
		units = append(units, *current)
	}

	if dropped > 0 {
		logger.Debug("segmenter: dropped %d paragraph(s) before the first heading", dropped)
	}
	logger.Debug("segmenter: found %d headnote(s) in %d paragraph(s)", len(units), len(paragraphs))
	return units
}
