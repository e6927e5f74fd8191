package ai

import (
	"regexp"
	"strings"
)

var enumerationMarker = regexp.MustCompile(`^\d+[.)]\s*`)

// ParseSuggestions extracts the numbered variants from a model response.
// Lines not starting with "N." or "N)" are dropped. When nothing is numbered
// the whole trimmed response is the single suggestion, and when the response
// is blank the original text is. The result is never empty.
func ParseSuggestions(raw, original string) []string {
	var suggestions []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if !enumerationMarker.MatchString(line) {
			continue
		}
		if s := strings.TrimSpace(enumerationMarker.ReplaceAllString(line, "")); s != "" {
			suggestions = append(suggestions, s)
		}
	}

	if len(suggestions) > 0 {
		return suggestions
	}
	if trimmed := strings.TrimSpace(raw); trimmed != "" {
		return []string{trimmed}
	}
	return []string{original}
}
