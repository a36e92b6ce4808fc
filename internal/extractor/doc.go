// Package extractor turns one headnote unit into a HeadnoteRecord.
//
// Extraction is an ordered sequence of steps. Each step reads the unit's
// raw text and the spans not yet consumed, and returns its field, the
// remaining spans and any warnings:
//
//  1. topic: the text between the heading number and the first period
//     that does not look like an abbreviation or statute number
//  2. level check: en dashes in the topic against levels in the number
//  3. case name: the last italic span, or a "X v. Y," regex fallback
//  4. citation and year: "NN Or LUBA NNN (YYYY)" after the case name
//  5. summary: the text between topic and case name
//  6. cross references: ORS, OAR and case citations in the summary
//
// Every heuristic miss degrades a field to its zero value and appends a
// human-readable warning; no step aborts the unit.
package extractor
