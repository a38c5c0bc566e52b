package transcribe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/genai"

	"github.com/jasperlabs/caption-gen/internal/audio"
)

const transcribePrompt = `Transcribe this audio verbatim. Return only the spoken words as plain text, with no timestamps, speaker labels, or commentary.`

// Transcribe submits the audio bytes to the speech-to-text model and returns
// the plain-text transcript. The asset is validated before any remote call:
// a missing or zero-byte file is a local failure, not an upload.
func (t *implTranscriber) Transcribe(ctx context.Context, asset *audio.Asset) (string, error) {
	if asset == nil {
		return "", fmt.Errorf("no audio asset")
	}

	info, err := os.Stat(asset.Path)
	if err != nil {
		return "", fmt.Errorf("audio file missing: %w", err)
	}
	if info.Size() == 0 {
		return "", fmt.Errorf("audio file is empty: %s", asset.Path)
	}

	data, err := os.ReadFile(asset.Path)
	if err != nil {
		return "", fmt.Errorf("read audio file: %w", err)
	}

	t.logger.Info(ctx, "Transcribing %s (%d bytes)", filepath.Base(asset.Path), info.Size())

	parts := []*genai.Part{
		genai.NewPartFromText(transcribePrompt),
		genai.NewPartFromBytes(data, mimeType(asset.Path)),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	result, err := t.client.Models.GenerateContent(ctx, t.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("transcribe audio: %w", err)
	}

	text := responseText(result)
	if text == "" {
		return "", fmt.Errorf("empty transcription response")
	}

	t.logger.Info(ctx, "Transcription complete: %d chars", len(text))
	return text, nil
}

func responseText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	return strings.TrimSpace(text)
}

// mimeType maps the container extension to the payload MIME type
func mimeType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return "audio/mpeg"
	case ".m4a":
		return "audio/mp4"
	case ".webm":
		return "audio/webm"
	case ".opus":
		return "audio/ogg"
	case ".wav":
		return "audio/wav"
	default:
		return "audio/mpeg"
	}
}
