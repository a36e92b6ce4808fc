package extractor

import "regexp"

// space matches ASCII whitespace and Unicode separators such as the
// non-breaking spaces word processors put around "v." and reporter names.
const space = `[\s\p{Z}]`

// topicPatternText is the topic pattern as named in warnings. The compiled
// form widens \s to also match Unicode separators.
const topicPatternText = `^(?:[\d.]{2,}\s+)([\s\S]+?[^S-U0-9]\.)`

// patterns holds the compiled expressions used by the extraction steps.
type patterns struct {
	// topic captures the heading text up to a period that is not preceded
	// by S, T, U or a digit, to avoid stopping at "U.S." or "197.".
	// Captures: (1) topic including its period.
	topic *regexp.Regexp

	// splitParty matches a case name that begins at "v.", meaning the
	// first party was italicised separately.
	splitParty *regexp.Regexp

	// caseFallback finds "Party v. Other," in unformatted text.
	caseFallback *regexp.Regexp

	// citation matches "45 Or LUBA 100 (2003)".
	// Captures: (1) reporter citation, (2) year.
	citation *regexp.Regexp

	// reporter matches the citation alone when no well-formed year follows.
	// Captures: (1) reporter citation.
	reporter *regexp.Regexp

	// levelSeparator counts heading levels in a number such as "1.2.3".
	levelSeparator *regexp.Regexp
}

// newPatterns compiles the extraction patterns.
func newPatterns() *patterns {
	return &patterns{
		topic:          regexp.MustCompile(`^(?:[\d.]{2,}` + space + `+)([\s\S]+?[^S-U0-9]\.)`),
		splitParty:     regexp.MustCompile(`^v\.` + space),
		caseFallback:   regexp.MustCompile(`[^\s\p{Z}]*?` + space + `v\.` + space + `[\s\S]*?,`),
		citation:       regexp.MustCompile(space + `*(\d+` + space + `+Or` + space + `+LUBA` + space + `+\d+)` + space + `+\((\d{4})\)`),
		reporter:       regexp.MustCompile(`(\d+` + space + `+Or` + space + `+LUBA` + space + `+\d+)`),
		levelSeparator: regexp.MustCompile(`\.\d`),
	}
}

// defaultPatterns is shared by all extractors; compiled patterns are safe
// for concurrent use.
var defaultPatterns = newPatterns()
