package domain

import (
	"fmt"
	"strings"
	"time"
)

// ParseResult is the outcome of running the pipeline over one document.
type ParseResult struct {
	// Source is the path of the document that was read.
	Source string

	// Units is the number of headnote units the segmenter produced.
	Units int

	// Records holds successfully extracted headnotes in document order.
	Records []HeadnoteRecord

	// Failures holds units whose extraction failed outright.
	Failures []UnitFailure
}

// Warnings flattens every record's error list into "item <index>: <warning>" lines.
func (r *ParseResult) Warnings() []string {
	var out []string
	for i := range r.Records {
		for _, w := range r.Records[i].ErrorList {
			out = append(out, fmt.Sprintf("item %s: %s", r.Records[i].Index, w))
		}
	}
	return out
}

// RunMetadata describes one parse run. It is written next to the records
// and persisted alongside them.
type RunMetadata struct {
	RunID           string        `json:"run_id"`
	SourceFile      string        `json:"source_file"`
	TotalHeadnotes  int           `json:"total_headnotes"`
	ParsingFailures int           `json:"parsing_failures"`
	PossibleErrors  []string      `json:"possible_errors"`
	ProcessedDate   time.Time     `json:"processed_date"`
	Errors          []UnitFailure `json:"errors"`
}

// NewRunMetadata summarises a parse result. The processing time is supplied
// by the caller so that the core never reads the wall clock.
func NewRunMetadata(runID string, result *ParseResult, processedAt time.Time) RunMetadata {
	meta := RunMetadata{
		RunID:          runID,
		SourceFile:     result.Source,
		TotalHeadnotes: len(result.Records),
		PossibleErrors: result.Warnings(),
		ProcessedDate:  processedAt,
		Errors:         result.Failures,
	}
	meta.ParsingFailures = len(result.Failures)
	if meta.PossibleErrors == nil {
		meta.PossibleErrors = []string{}
	}
	if meta.Errors == nil {
		meta.Errors = []UnitFailure{}
	}
	return meta
}

// RecordFilter narrows a listing of stored headnotes.
// Zero values match everything.
type RecordFilter struct {
	RunID        string
	Topic        string
	CaseName     string
	Year         int
	WarningsOnly bool
	Limit        int
}

// Matches reports whether rec passes the filter's field conditions.
// RunID and Limit are applied by the store. Topic and CaseName match
// case-insensitive substrings.
func (f RecordFilter) Matches(rec *HeadnoteRecord) bool {
	if f.Topic != "" && !containsFold(rec.Topic, f.Topic) {
		return false
	}
	if f.CaseName != "" && !containsFold(rec.CaseName, f.CaseName) {
		return false
	}
	if f.Year != 0 && (rec.Year == nil || *rec.Year != f.Year) {
		return false
	}
	if f.WarningsOnly && !rec.HasWarnings() {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
