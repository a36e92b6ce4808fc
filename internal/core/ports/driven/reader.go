package driven

import (
	"context"

	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/domain"
)

// DocumentReader decodes a word-processed document into paragraphs.
// Each reader handles specific file extensions (e.g., .docx, .md).
type DocumentReader interface {
	// Name returns the reader name for logging.
	Name() string

	// Extensions returns the lower-case file extensions this reader handles,
	// including the leading dot.
	Extensions() []string

	// Priority returns the selection priority (higher = preferred).
	// Format-specific readers should return 50-89.
	// Fallback readers should return 1-9.
	Priority() int

	// Read decodes the file at path. Paragraphs are returned in document
	// order; runs keep their raw text and bold/italic flags.
	Read(ctx context.Context, path string) ([]domain.Paragraph, error)
}
