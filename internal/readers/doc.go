// Package readers decodes word-processed documents into styled paragraphs.
// Each reader handles a set of file extensions; the Registry picks the
// highest-priority reader for a path.
//
// Readers are registered with the Registry at startup.
package readers
