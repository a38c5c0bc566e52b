package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/jasperlabs/caption-gen/internal/subtitle"
)

// resolveTranscript runs the two-tier fallback: pre-existing captions first,
// then audio download plus transcription. The subtitle tier short-circuits
// on success and never touches audio. In the fallback tier the downloaded
// asset is deleted on every exit path, whatever the transcription outcome.
func (p *implPipeline) resolveTranscript(ctx context.Context, videoURL string) (string, error) {
	res := p.fetcher.Fetch(ctx, videoURL)
	switch res.Status {
	case subtitle.Found:
		return res.Text, nil
	case subtitle.ToolError:
		p.logger.Warn(ctx, "Caption fetch failed (%s), falling back to audio: %s", res.Reason, videoURL)
	case subtitle.NotFound:
		p.logger.Info(ctx, "No captions found, falling back to audio: %s", videoURL)
	}

	asset, err := p.acquirer.Acquire(ctx, videoURL)
	if err != nil {
		return "", fmt.Errorf("acquire audio: %w", err)
	}
	defer func() {
		if !asset.Exists() {
			return
		}
		if err := asset.Remove(); err != nil {
			p.logger.Warn(ctx, "Failed to remove audio file %s: %v", asset.Path, err)
		}
	}()

	text, err := p.transcriber.Transcribe(ctx, asset)
	if err != nil {
		return "", fmt.Errorf("transcribe audio: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("transcription produced no text for %s", videoURL)
	}

	return text, nil
}
