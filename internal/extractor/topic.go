package extractor

import (
	"fmt"
	"strings"
)

// extractTopic returns the topic and the offset in raw just past the
// matched topic. The offset is -1 when no topic was found.
func (p *patterns) extractTopic(raw string) (topic string, end int, warnings []string) {
	loc := p.topic.FindStringSubmatchIndex(raw)
	if loc == nil {
		return "", -1, []string{fmt.Sprintf("No topic found in %s using %s", raw, topicPatternText)}
	}
	topic = strings.TrimRight(strings.TrimSpace(raw[loc[2]:loc[3]]), ".")
	return topic, loc[1], nil
}

// checkLevels compares the depth of the heading number with the number of
// en-dash separated levels in the topic. Both values are kept either way.
func (p *patterns) checkLevels(number, topic string) []string {
	dashes := strings.Count(topic, "–")
	levels := len(p.levelSeparator.FindAllStringIndex(number, -1))
	if dashes != levels {
		return []string{fmt.Sprintf("Headnote '%s' & topic '%s' appear mismatched", number, topic)}
	}
	return nil
}
