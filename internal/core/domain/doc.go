// Package domain defines the core entities of the headnote extractor.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Run / Paragraph: decoded document text with bold and italic flags
//   - FormatSpan: consolidated run of same-style text within a paragraph
//   - HeadnoteUnit: the paragraphs belonging to one numbered headnote
//   - HeadnoteRecord: the structured output for one headnote
//   - UnitFailure: a headnote that could not be extracted at all
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
