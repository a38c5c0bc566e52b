package subtitle

import (
	"regexp"
	"strings"
)

var (
	reCueTiming = regexp.MustCompile(`-->`)
	reCueIndex  = regexp.MustCompile(`^\d+$`)
)

// parseVTT reduces a WebVTT cue file to its spoken text. Format headers,
// timing lines, and bare cue indexes are dropped; the remaining lines are
// joined with single spaces.
func parseVTT(content string) string {
	var textLines []string

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "WEBVTT") {
			continue
		}
		if reCueTiming.MatchString(trimmed) {
			continue
		}
		if reCueIndex.MatchString(trimmed) {
			continue
		}
		textLines = append(textLines, trimmed)
	}

	return strings.Join(textLines, " ")
}
