package driven

import (
	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/domain"
)

// ResultWriter serialises the output of a parse run.
type ResultWriter interface {
	// WriteRecords writes the extracted records and returns the file path used.
	WriteRecords(records []domain.HeadnoteRecord) (string, error)

	// WriteMetadata writes the run metadata and returns the file path used.
	// Returns an empty path when metadata output is disabled.
	WriteMetadata(meta domain.RunMetadata) (string, error)
}
