package caption

import (
	"google.golang.org/genai"

	"github.com/jasperlabs/caption-gen/internal/logger"
)

type implSynthesizer struct {
	client *genai.Client
	model  string
	logger logger.Logger
}

// New creates a Synthesizer backed by the given Gemini client
func New(client *genai.Client, model string, log logger.Logger) Synthesizer {
	return &implSynthesizer{
		client: client,
		model:  model,
		logger: log,
	}
}
