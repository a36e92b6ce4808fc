package driven

import (
	"context"

	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/domain"
)

// HeadnoteStore persists parse runs and their extracted headnotes.
type HeadnoteStore interface {
	// SaveRun stores a run's metadata together with its records.
	SaveRun(ctx context.Context, meta domain.RunMetadata, records []domain.HeadnoteRecord) error

	// LatestRun returns the most recently processed run.
	// Returns domain.ErrNotFound if no run has been stored.
	LatestRun(ctx context.Context) (*domain.RunMetadata, error)

	// GetRecord retrieves one headnote of a run by its heading number.
	GetRecord(ctx context.Context, runID, headnote string) (*domain.HeadnoteRecord, error)

	// ListRecords returns stored headnotes matching the filter,
	// newest run first and document order within a run.
	ListRecords(ctx context.Context, filter domain.RecordFilter) ([]domain.HeadnoteRecord, error)
}
