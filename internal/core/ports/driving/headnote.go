package driving

import (
	"context"

	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/domain"
)

// HeadnoteService runs the extraction pipeline and exposes stored results.
type HeadnoteService interface {
	// Parse reads the document at path and extracts every headnote.
	// Input errors abort the run; per-unit failures are reported in the result.
	Parse(ctx context.Context, path string) (*domain.ParseResult, error)

	// Save persists a parse result under the given metadata.
	Save(ctx context.Context, meta domain.RunMetadata, result *domain.ParseResult) error

	// List returns stored headnotes matching the filter. An empty RunID
	// selects the latest run.
	List(ctx context.Context, filter domain.RecordFilter) ([]domain.HeadnoteRecord, error)

	// Get returns one stored headnote. An empty runID means the latest run.
	Get(ctx context.Context, runID, headnote string) (*domain.HeadnoteRecord, error)
}
