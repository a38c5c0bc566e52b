package subtitle

import "context"

// Status tags the outcome of a caption fetch. NotFound and ToolError both
// mean the caller has no text to work with, but a ToolError carries the
// reason so it can be surfaced instead of masquerading as missing captions.
type Status int

const (
	// NotFound means the tool ran but produced no usable caption file
	NotFound Status = iota
	// Found means the video had pre-existing captions and Text is set
	Found
	// ToolError means the tool exited non-zero or the bounded wait expired
	ToolError
)

// Result is the tagged outcome of Fetch
type Result struct {
	Status Status
	Text   string
	Reason string
}

// Fetcher extracts pre-existing captions for a video URL
type Fetcher interface {
	Fetch(ctx context.Context, videoURL string) Result
}
