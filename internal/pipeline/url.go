package pipeline

import (
	"bufio"
	"io"
	"strings"
)

// InvalidURLReason is the fixed validation failure for unrecognized URLs
const InvalidURLReason = "Invalid YouTube URL"

// validURL recognizes the short-form video URL shapes the pipeline accepts
func validURL(u string) bool {
	return strings.Contains(u, "youtube.com/shorts/") || strings.Contains(u, "youtu.be/")
}

// ParseURLList reads one URL per line, skipping blank lines and comments
func ParseURLList(r io.Reader) ([]string, error) {
	var urls []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}

	return urls, scanner.Err()
}
