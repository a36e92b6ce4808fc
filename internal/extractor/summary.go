package extractor

import "strings"

// extractSummary returns the text between the topic and the last
// occurrence of the case name, with whitespace runs collapsed.
func extractSummary(raw string, topicEnd int, caseName string) string {
	summary := raw
	if topicEnd >= 0 {
		summary = strings.TrimSpace(summary[topicEnd:])
	}
	if caseName != "" {
		if pos := strings.LastIndex(summary, caseName); pos != -1 {
			summary = summary[:pos]
		}
	}
	return strings.Join(strings.Fields(summary), " ")
}
