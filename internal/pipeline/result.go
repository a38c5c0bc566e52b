package pipeline

import "time"

const previewLimit = 200

// Result is the immutable record produced for each input URL
type Result struct {
	URL               string
	Success           bool
	Caption           string
	TranscriptPreview string
	Err               string
	Elapsed           time.Duration
}

// Summary aggregates a processed batch
type Summary struct {
	Total       int
	Succeeded   int
	Failed      int
	SuccessRate float64
}

// Summarize counts successes and failures. SuccessRate is a fraction in
// [0, 1] and is defined as 0 for an empty batch.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Success {
			s.Succeeded++
		} else {
			s.Failed++
		}
	}
	if s.Total > 0 {
		s.SuccessRate = float64(s.Succeeded) / float64(s.Total)
	}
	return s
}

// preview cuts the transcript to its first 200 characters, appending an
// ellipsis only when something was dropped. Cuts on rune boundaries.
func preview(transcript string) string {
	runes := []rune(transcript)
	if len(runes) <= previewLimit {
		return transcript
	}
	return string(runes[:previewLimit]) + "..."
}
