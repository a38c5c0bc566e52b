package pipeline

import (
	"github.com/jasperlabs/caption-gen/internal/audio"
	"github.com/jasperlabs/caption-gen/internal/caption"
	"github.com/jasperlabs/caption-gen/internal/logger"
	"github.com/jasperlabs/caption-gen/internal/subtitle"
	"github.com/jasperlabs/caption-gen/internal/transcribe"
)

type implPipeline struct {
	fetcher     subtitle.Fetcher
	acquirer    audio.Acquirer
	transcriber transcribe.Transcriber
	synthesizer caption.Synthesizer
	logger      logger.Logger
}

// New creates a Pipeline from its four collaborators
func New(fetcher subtitle.Fetcher, acquirer audio.Acquirer, transcriber transcribe.Transcriber, synth caption.Synthesizer, log logger.Logger) Pipeline {
	return &implPipeline{
		fetcher:     fetcher,
		acquirer:    acquirer,
		transcriber: transcriber,
		synthesizer: synth,
		logger:      log,
	}
}
