package audio

import "context"

// Acquirer downloads a standalone audio track for a video URL.
// The returned Asset is owned exclusively by the caller, who must
// remove it when done.
type Acquirer interface {
	Acquire(ctx context.Context, videoURL string) (*Asset, error)
}
