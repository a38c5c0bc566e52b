package pipeline

import (
	"context"
	"fmt"
	"time"
)

// transcriptUnavailableReason is the failure reason when both tiers came
// back empty for a valid URL
const transcriptUnavailableReason = "transcript unavailable"

// Process handles each URL in order, fully, before starting the next.
// Every URL yields exactly one Result; a fault in one URL never aborts
// the rest of the batch.
func (p *implPipeline) Process(ctx context.Context, urls []string) ([]Result, Summary) {
	results := make([]Result, 0, len(urls))

	for i, u := range urls {
		p.logger.Info(ctx, "Processing %d/%d: %s", i+1, len(urls), u)

		r := p.processOne(ctx, u)
		if r.Success {
			p.logger.Info(ctx, "Done in %.1fs: %s", r.Elapsed.Seconds(), r.Caption)
		} else {
			p.logger.Warn(ctx, "Failed in %.1fs: %s", r.Elapsed.Seconds(), r.Err)
		}

		results = append(results, r)
	}

	summary := Summarize(results)
	p.logger.Info(ctx, "Batch complete: %d total, %d succeeded, %d failed", summary.Total, summary.Succeeded, summary.Failed)

	return results, summary
}

func (p *implPipeline) processOne(ctx context.Context, videoURL string) (res Result) {
	start := time.Now()
	res = Result{URL: videoURL}

	// A panic from a collaborator becomes a failed result for this URL only
	defer func() {
		if v := recover(); v != nil {
			res = Result{
				URL:     videoURL,
				Err:     fmt.Sprintf("internal error: %v", v),
				Elapsed: time.Since(start),
			}
		}
	}()

	if !validURL(videoURL) {
		res.Err = InvalidURLReason
		res.Elapsed = time.Since(start)
		return res
	}

	transcript, err := p.resolveTranscript(ctx, videoURL)
	if err != nil {
		p.logger.Warn(ctx, "Could not resolve transcript for %s: %v", videoURL, err)
		res.Err = transcriptUnavailableReason
		res.Elapsed = time.Since(start)
		return res
	}

	// Sentinel error captions still count as completed: the transcript
	// stage proved the URL workable, and callers render every record
	// the same way.
	res.Caption = p.synthesizer.Synthesize(ctx, transcript)
	res.TranscriptPreview = preview(transcript)
	res.Success = true
	res.Elapsed = time.Since(start)
	return res
}
