package extractor

import (
	"strconv"

	"github.com/mOrsExtension/LUBA-Headnotes/internal/citations"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/domain"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/ports/driven"
	"github.com/mOrsExtension/LUBA-Headnotes/internal/logger"
)

// Extractor turns headnote units into records. It holds no per-unit
// state and is safe for concurrent use.
type Extractor struct {
	patterns *patterns
	scanners []driven.CitationScanner
	scope    domain.CitationScope
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithScanners replaces the cross-reference scanners. Scanners named
// "ors", "oar" and "case" fill the matching record fields; others are
// ignored.
func WithScanners(scanners ...driven.CitationScanner) Option {
	return func(e *Extractor) {
		e.scanners = scanners
	}
}

// WithScope selects the text that cross-reference scanners read.
func WithScope(scope domain.CitationScope) Option {
	return func(e *Extractor) {
		if scope.IsValid() {
			e.scope = scope
		}
	}
}

// New creates an extractor with the default ORS, OAR and case scanners
// reading the summary.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		patterns: defaultPatterns,
		scanners: citations.Defaults(),
		scope:    domain.ScopeSummary,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract runs every extraction step over unit. index is the unit's
// position in the document and becomes the record's Index.
func (e *Extractor) Extract(index int, unit domain.HeadnoteUnit) domain.HeadnoteRecord {
	raw := unit.RawText
	spans := NewSpans(unit.Formatting)
	warnings := []string{}

	topic, topicEnd, w := e.patterns.extractTopic(raw)
	warnings = append(warnings, w...)

	warnings = append(warnings, e.patterns.checkLevels(unit.Number, topic)...)

	caseName, spans, w := e.patterns.extractCaseName(raw, spans)
	warnings = append(warnings, w...)
	spans = dropHeadingLabel(spans, unit.Number, topic)

	citation, year, w := e.patterns.extractCitation(raw, caseName)
	warnings = append(warnings, w...)

	summary := extractSummary(raw, topicEnd, caseName)

	rec := domain.HeadnoteRecord{
		Headnote:   unit.Number,
		Topic:      topic,
		Summary:    summary,
		CaseName:   caseName,
		Citation:   citation,
		Year:       year,
		ORSCites:   []string{},
		OARCites:   []string{},
		CaseCites:  []string{},
		Formatting: spans.Slice(),
		ErrorList:  warnings,
		Index:      strconv.Itoa(index),
	}
	e.scanCrossReferences(&rec, raw)

	if len(warnings) > 0 {
		logger.Debug("extractor: headnote %s (item %d) has %d warning(s)", unit.Number, index, len(warnings))
	}
	return rec
}

// scanCrossReferences fills the citation sets from the configured scope.
func (e *Extractor) scanCrossReferences(rec *domain.HeadnoteRecord, raw string) {
	text := rec.Summary
	if e.scope == domain.ScopeRawText {
		text = raw
	}

	for _, s := range e.scanners {
		switch s.Name() {
		case citations.NameORS:
			rec.ORSCites = s.Scan(text)
		case citations.NameOAR:
			rec.OARCites = s.Scan(text)
		case citations.NameCase:
			rec.CaseCites = s.Scan(text)
		default:
			logger.Warn("extractor: scanner %q has no record field, skipped", s.Name())
		}
	}
}
