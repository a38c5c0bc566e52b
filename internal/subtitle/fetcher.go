package subtitle

import (
	"context"
	"os"
	"path/filepath"

	"github.com/jasperlabs/caption-gen/pkg/executor"
)

const reasonLimit = 200

// Fetch asks yt-dlp for auto-generated and manual captions without
// downloading the media, then parses the first cue file it produced.
// All failure modes are soft: the caller falls back to audio transcription.
func (f *implFetcher) Fetch(ctx context.Context, videoURL string) Result {
	workDir, err := os.MkdirTemp(f.cfg.Paths.Temp, "subs-*")
	if err != nil {
		return Result{Status: ToolError, Reason: truncate(err.Error(), reasonLimit)}
	}
	defer os.RemoveAll(workDir)

	args := []string{
		"--write-auto-subs",
		"--write-subs",
		"--skip-download",
		"--sub-format", "vtt",
		"--sub-langs", f.cfg.YTDLP.SubtitleLangs,
		videoURL,
	}

	ctx, cancel := context.WithTimeout(ctx, f.cfg.YTDLP.SubtitleTimeout())
	defer cancel()

	f.logger.Debug(ctx, "Fetching captions into %s: %s", workDir, videoURL)

	if _, err := f.executor.ExecuteInDir(ctx, workDir, f.cfg.YTDLP.BinaryPath, args...); err != nil {
		if executor.IsTimeout(err) {
			return Result{Status: ToolError, Reason: "caption fetch timed out"}
		}
		return Result{Status: ToolError, Reason: truncate(err.Error(), reasonLimit)}
	}

	cueFiles, err := filepath.Glob(filepath.Join(workDir, "*.vtt"))
	if err != nil || len(cueFiles) == 0 {
		return Result{Status: NotFound}
	}

	content, err := os.ReadFile(cueFiles[0])
	if err != nil {
		return Result{Status: ToolError, Reason: truncate(err.Error(), reasonLimit)}
	}

	text := parseVTT(string(content))
	if text == "" {
		return Result{Status: NotFound}
	}

	f.logger.Info(ctx, "Found captions (%d chars): %s", len(text), videoURL)
	return Result{Status: Found, Text: text}
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
