package caption

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const (
	maxOutputTokens = 150
	temperature     = 0.8

	systemInstruction = "You are an expert social media caption writer for healthcare content."

	promptTemplate = `You are a social media expert specializing in healthcare marketing.

Create a catchy, engaging caption for a YouTube Short based on this transcript.

TRANSCRIPT:
%s

REQUIREMENTS:
- 1-2 punchy sentences maximum
- Healthcare/medical tone but accessible to general audience
- Include relevant emojis (2-3 max)
- Focus on the key insight or takeaway
- Make it shareable and engaging
- Avoid medical jargon - keep it conversational

EXAMPLES:
"🩺 Did you know this simple trick can reduce back pain in 30 seconds? Your spine will thank you!"
"💊 The truth about supplements that Big Pharma doesn't want you to know..."

Generate ONLY the caption, no explanation:`
)

// Synthesize builds the fixed prompt around the transcript and requests a
// completion. Failures come back as sentinel captions, never as errors.
func (s *implSynthesizer) Synthesize(ctx context.Context, transcript string) string {
	if strings.TrimSpace(transcript) == "" {
		return NoTranscriptCaption
	}

	s.logger.Info(ctx, "Generating caption from transcript (%d chars)", len(transcript))

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr[float32](temperature),
		MaxOutputTokens:   maxOutputTokens,
	}

	prompt := buildPrompt(transcript)
	result, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), cfg)
	if err != nil {
		s.logger.Warn(ctx, "Caption generation failed: %v", err)
		return ErrorCaptionPrefix + err.Error()
	}

	text := responseText(result)
	if text == "" {
		return ErrorCaptionPrefix + "empty response from model"
	}

	return text
}

func buildPrompt(transcript string) string {
	return fmt.Sprintf(promptTemplate, transcript)
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
