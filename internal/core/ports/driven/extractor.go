package driven

import "github.com/mOrsExtension/LUBA-Headnotes/internal/core/domain"

// HeadnoteExtractor turns one headnote unit into a record.
// Implementations must be safe for concurrent use.
type HeadnoteExtractor interface {
	// Extract parses the unit at position index in the document.
	Extract(index int, unit domain.HeadnoteUnit) domain.HeadnoteRecord
}
