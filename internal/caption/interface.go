package caption

import "context"

// Synthesizer turns a transcript into a short marketing caption.
// It always returns a string: remote failures are folded into a sentinel
// error caption so every record renders uniformly downstream.
type Synthesizer interface {
	Synthesize(ctx context.Context, transcript string) string
}

// Sentinel captions returned instead of raising past the component boundary
const (
	// NoTranscriptCaption is returned for a structurally empty transcript,
	// without calling the remote service
	NoTranscriptCaption = "No transcript available"
	// ErrorCaptionPrefix prefixes the stringified remote error
	ErrorCaptionPrefix = "Caption error: "
)
