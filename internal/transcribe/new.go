package transcribe

import (
	"google.golang.org/genai"

	"github.com/jasperlabs/caption-gen/internal/logger"
)

type implTranscriber struct {
	client *genai.Client
	model  string
	logger logger.Logger
}

// New creates a Transcriber backed by the given Gemini client.
// The client is shared across the process lifetime and never mutated here.
func New(client *genai.Client, model string, log logger.Logger) Transcriber {
	return &implTranscriber{
		client: client,
		model:  model,
		logger: log,
	}
}
