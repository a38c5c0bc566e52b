package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/jasperlabs/caption-gen/pkg/executor"
)

const reasonLimit = 200

// Acquire downloads the audio-only track at best available quality to a
// uniquely named temp path. yt-dlp may keep the source container instead of
// the requested one, so a small set of plausible extensions is probed for
// the produced file.
func (a *implAcquirer) Acquire(ctx context.Context, videoURL string) (*Asset, error) {
	base := filepath.Join(a.cfg.Paths.Temp, "audio-"+uuid.NewString())

	args := []string{
		"-x",
		"--audio-format", a.cfg.YTDLP.AudioFormat,
		"--audio-quality", "0",
		"-o", base + ".%(ext)s",
		videoURL,
	}

	ctx, cancel := context.WithTimeout(ctx, a.cfg.YTDLP.AudioTimeout())
	defer cancel()

	a.logger.Info(ctx, "Downloading audio: %s", videoURL)

	if _, err := a.executor.Execute(ctx, a.cfg.YTDLP.BinaryPath, args...); err != nil {
		a.removePartials(base)
		if executor.IsTimeout(err) {
			return nil, fmt.Errorf("audio download timed out after %s", a.cfg.YTDLP.AudioTimeout())
		}
		return nil, fmt.Errorf("audio download failed: %s", truncate(err.Error(), reasonLimit))
	}

	for _, ext := range probeExtensions(a.cfg.YTDLP.AudioFormat) {
		path := base + ext
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		a.logger.Info(ctx, "Audio downloaded: %s (%d bytes)", filepath.Base(path), info.Size())
		return &Asset{Path: path, Size: info.Size()}, nil
	}

	a.removePartials(base)
	return nil, fmt.Errorf("no audio file produced for %s", videoURL)
}

// removePartials clears whatever a failed or interrupted download left
// behind, so failures never leak temp files
func (a *implAcquirer) removePartials(base string) {
	for _, ext := range probeExtensions(a.cfg.YTDLP.AudioFormat) {
		os.Remove(base + ext)
		os.Remove(base + ext + ".part")
	}
}

// probeExtensions lists output extensions to check, requested format first
func probeExtensions(format string) []string {
	exts := []string{"." + format}
	for _, ext := range []string{".mp3", ".m4a", ".webm", ".opus"} {
		if ext != exts[0] {
			exts = append(exts, ext)
		}
	}
	return exts
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
