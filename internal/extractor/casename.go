package extractor

import (
	"strings"

	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/domain"
)

// Case name warnings.
const (
	warnBrokenItalics = "Case name italicization was broken; double check case citation"
	warnMissingParty  = "Missing party before 'v.' in case"
	warnRegexFallback = "No italicized case name found; case parsed via regular expressions, may be missing part of party name"
	warnNoCase        = "No italicized case name found; no LUBA case found by regular expressions"
)

// trimCaseName strips surrounding spaces and commas.
func trimCaseName(s string) string {
	return strings.Trim(s, " ,")
}

// extractCaseName takes the case name from the last italic span, joining
// a separately italicised first party when the span starts at "v.". The
// spans used are consumed. Without italics it falls back to a regex over
// the raw text.
func (p *patterns) extractCaseName(raw string, spans Spans) (string, Spans, []string) {
	italics := spans.Indices(domain.SpanItalic)
	if len(italics) == 0 {
		matches := p.caseFallback.FindAllString(raw, -1)
		if len(matches) == 0 {
			return "", spans, []string{warnNoCase}
		}
		return trimCaseName(matches[len(matches)-1]), spans, []string{warnRegexFallback}
	}

	var warnings []string
	last := italics[len(italics)-1]
	name := trimCaseName(spans.At(last).Text)

	if p.splitParty.MatchString(name) {
		if len(italics) > 1 {
			prior := italics[len(italics)-2]
			name = strings.TrimSpace(spans.At(prior).Text) + " " + name
			// prior < last, so removing last first keeps prior valid.
			spans = spans.Remove(last).Remove(prior)
			return name, spans, []string{warnBrokenItalics}
		}
		warnings = append(warnings, warnMissingParty)
	}

	return name, spans.Remove(last), warnings
}

// dropHeadingLabel consumes the first span when it is the bold heading
// label, i.e. bold text starting with the heading number or the topic.
// An empty topic never matches.
func dropHeadingLabel(spans Spans, number, topic string) Spans {
	if spans.Len() == 0 {
		return spans
	}
	first := spans.At(0)
	if first.Type != domain.SpanBold {
		return spans
	}
	if strings.HasPrefix(first.Text, number) || (topic != "" && strings.HasPrefix(first.Text, topic)) {
		return spans.Remove(0)
	}
	return spans
}
