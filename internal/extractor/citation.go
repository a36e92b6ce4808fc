package extractor

import (
	"fmt"
	"strconv"
	"strings"
)

// extractCitation looks for "NN Or LUBA NNN (YYYY)" in the text following
// the last occurrence of the case name. Upper-case " OR " is accepted.
// A reporter citation whose year is missing or malformed keeps the
// citation and leaves the year nil.
func (p *patterns) extractCitation(raw, caseName string) (citation string, year *int, warnings []string) {
	if caseName == "" {
		return "", nil, nil
	}

	pos := strings.LastIndex(raw, caseName)
	if pos == -1 {
		return "", nil, []string{fmt.Sprintf("Case name '%s' not found in text; no case cite extracted", caseName)}
	}

	after := strings.TrimSpace(raw[pos+len(caseName):])
	after = strings.ReplaceAll(after, " OR ", " Or ")

	m := p.citation.FindStringSubmatch(after)
	if m == nil {
		// A reporter cite without a usable year still fills the citation.
		if r := p.reporter.FindStringSubmatch(after); r != nil {
			return r[1], nil, []string{fmt.Sprintf("No case year found in %s", after)}
		}
		return "", nil, []string{fmt.Sprintf("No case cite found in %s", after)}
	}

	citation = strings.TrimSpace(m[1])
	y, err := strconv.Atoi(m[2])
	if err != nil {
		return citation, nil, []string{fmt.Sprintf("No case year found in %s", after)}
	}
	return citation, &y, nil
}
