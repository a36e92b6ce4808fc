package driven

import (
	"context"

	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/domain"
)

// ReaderRegistry selects the appropriate reader for a document.
// It maintains a priority-ordered list of readers and dispatches
// based on file extension.
type ReaderRegistry interface {
	// Read decodes a file using the best matching reader.
	Read(ctx context.Context, path string) ([]domain.Paragraph, error)

	// Register adds a reader to the registry.
	Register(reader DocumentReader)

	// SupportedExtensions returns all extensions that can be read.
	SupportedExtensions() []string
}
