package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"google.golang.org/genai"

	"github.com/jasperlabs/caption-gen/internal/audio"
	"github.com/jasperlabs/caption-gen/internal/caption"
	"github.com/jasperlabs/caption-gen/internal/config"
	"github.com/jasperlabs/caption-gen/internal/logger"
	"github.com/jasperlabs/caption-gen/internal/pipeline"
	"github.com/jasperlabs/caption-gen/internal/subtitle"
	"github.com/jasperlabs/caption-gen/internal/transcribe"
	"github.com/jasperlabs/caption-gen/pkg/executor"
)

const apiKeyEnv = "GEMINI_API_KEY"

func newRootCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "captiongen",
		Short: "Generate marketing captions for YouTube Shorts",
		Long: `captiongen extracts the spoken content of YouTube Shorts and turns it
into short healthcare-marketing captions.

Per URL it first tries pre-existing captions; when none exist it downloads
the audio track and transcribes it, then asks the caption model for a
one-to-two sentence caption.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to the YAML config file")

	cmd.AddCommand(
		newRunCommand(&configPath),
		newWatchCommand(&configPath),
		newDoctorCommand(&configPath),
	)

	return cmd
}

// loadConfig reads the config file, falling back to built-in defaults when
// the default path does not exist and no explicit --config was given
func loadConfig(cmd *cobra.Command, path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) && !cmd.Flag("config").Changed {
		return config.Default(), nil
	}
	return config.Load(path)
}

type app struct {
	cfg  *config.Config
	log  logger.Logger
	pipe pipeline.Pipeline
}

// buildApp wires the full pipeline. The Gemini client is constructed once
// here and shared read-only by the transcriber and the synthesizer; a
// missing credential is a hard stop before any URL is touched.
func buildApp(ctx context.Context, cmd *cobra.Command, configPath string) (*app, error) {
	cfg, err := loadConfig(cmd, configPath)
	if err != nil {
		return nil, err
	}

	log := logger.New(cfg.Logging.Level)

	apiKey := os.Getenv(apiKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("%s must be set in the environment", apiKeyEnv)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	exec := executor.New()
	pipe := pipeline.New(
		subtitle.New(cfg, exec, log),
		audio.New(cfg, exec, log),
		transcribe.New(client, cfg.Gemini.TranscribeModel, log),
		caption.New(client, cfg.Gemini.CaptionModel, log),
		log,
	)

	return &app{cfg: cfg, log: log, pipe: pipe}, nil
}
