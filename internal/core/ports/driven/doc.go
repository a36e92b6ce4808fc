// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - DocumentReader: Decodes a file into paragraphs of styled runs
//   - ReaderRegistry: Selects the reader for a file
//   - CitationScanner: Finds one kind of cross-reference citation
//   - HeadnoteExtractor: Turns one headnote unit into a record
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - HeadnoteStore: Persistence of parse runs. Without it, results are only written as JSON.
//   - ResultWriter: JSON output of records and run metadata.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, reader, or scanner package
package driven
