package transcribe

import (
	"context"

	"github.com/jasperlabs/caption-gen/internal/audio"
)

// Transcriber converts an acquired audio asset into plain text
type Transcriber interface {
	Transcribe(ctx context.Context, asset *audio.Asset) (string, error)
}
