// Package segmenter groups decoded paragraphs into headnote units.
//
// A headnote begins with a paragraph whose text starts with a numeric
// heading such as "1.2.3". Every following paragraph belongs to that
// headnote until the next heading. While grouping, each paragraph's runs
// are consolidated into bold and italic FormatSpans, which later serve as
// the case name and heading label signals for the extractor.
package segmenter
