package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jasperlabs/caption-gen/internal/audio"
	"github.com/jasperlabs/caption-gen/internal/caption"
	"github.com/jasperlabs/caption-gen/internal/logger"
	"github.com/jasperlabs/caption-gen/internal/subtitle"
)

const shortsURL = "https://www.youtube.com/shorts/zfqpjjxtqCk"

type fakeFetcher struct {
	result subtitle.Result
	calls  int
}

func (f *fakeFetcher) Fetch(ctx context.Context, videoURL string) subtitle.Result {
	f.calls++
	return f.result
}

type fakeAcquirer struct {
	fn    func() (*audio.Asset, error)
	calls int
}

func (f *fakeAcquirer) Acquire(ctx context.Context, videoURL string) (*audio.Asset, error) {
	f.calls++
	if f.fn == nil {
		return nil, fmt.Errorf("no audio")
	}
	return f.fn()
}

type fakeTranscriber struct {
	text  string
	err   error
	calls int
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, asset *audio.Asset) (string, error) {
	f.calls++
	return f.text, f.err
}

type fakeSynthesizer struct {
	caption string
	panics  bool
	calls   int
	inputs  []string
}

func (f *fakeSynthesizer) Synthesize(ctx context.Context, transcript string) string {
	f.calls++
	f.inputs = append(f.inputs, transcript)
	if f.panics {
		panic("synthesizer exploded")
	}
	return f.caption
}

type deps struct {
	fetcher     *fakeFetcher
	acquirer    *fakeAcquirer
	transcriber *fakeTranscriber
	synthesizer *fakeSynthesizer
}

func newPipeline(d deps) Pipeline {
	if d.fetcher == nil {
		d.fetcher = &fakeFetcher{result: subtitle.Result{Status: subtitle.NotFound}}
	}
	if d.acquirer == nil {
		d.acquirer = &fakeAcquirer{}
	}
	if d.transcriber == nil {
		d.transcriber = &fakeTranscriber{}
	}
	if d.synthesizer == nil {
		d.synthesizer = &fakeSynthesizer{caption: "a caption"}
	}
	return New(d.fetcher, d.acquirer, d.transcriber, d.synthesizer, logger.New("error"))
}

// tempAsset writes a real file so cleanup can be observed on disk
func tempAsset(t *testing.T) *audio.Asset {
	t.Helper()
	path := filepath.Join(t.TempDir(), "audio.mp3")
	if err := os.WriteFile(path, []byte("bytes"), 0644); err != nil {
		t.Fatal(err)
	}
	return &audio.Asset{Path: path, Size: 5}
}

func TestProcessOneResultPerURL(t *testing.T) {
	fetcher := &fakeFetcher{result: subtitle.Result{Status: subtitle.Found, Text: "spoken words"}}
	p := newPipeline(deps{fetcher: fetcher})

	urls := []string{
		shortsURL,
		"not-a-video-url",
		"https://youtu.be/abc123",
	}

	results, summary := p.Process(context.Background(), urls)

	if len(results) != len(urls) {
		t.Fatalf("got %d results for %d urls", len(results), len(urls))
	}
	for i, r := range results {
		if r.URL != urls[i] {
			t.Errorf("result %d URL = %q, want %q (order must be preserved)", i, r.URL, urls[i])
		}
	}

	want := Summary{Total: 3, Succeeded: 2, Failed: 1, SuccessRate: 2.0 / 3.0}
	if diff := cmp.Diff(want, summary); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestInvalidURLNoExternalCalls(t *testing.T) {
	fetcher := &fakeFetcher{}
	acquirer := &fakeAcquirer{}
	transcriber := &fakeTranscriber{}
	synth := &fakeSynthesizer{}
	p := newPipeline(deps{fetcher: fetcher, acquirer: acquirer, transcriber: transcriber, synthesizer: synth})

	results, _ := p.Process(context.Background(), []string{"not-a-video-url"})

	r := results[0]
	if r.Success {
		t.Error("invalid URL should fail")
	}
	if r.Err != InvalidURLReason {
		t.Errorf("Err = %q, want %q", r.Err, InvalidURLReason)
	}
	if fetcher.calls+acquirer.calls+transcriber.calls+synth.calls != 0 {
		t.Error("invalid URL must be rejected before any external call")
	}
}

func TestSubtitleShortCircuit(t *testing.T) {
	fetcher := &fakeFetcher{result: subtitle.Result{Status: subtitle.Found, Text: "Hello world"}}
	acquirer := &fakeAcquirer{}
	transcriber := &fakeTranscriber{}
	synth := &fakeSynthesizer{caption: "🩺 Hello!"}
	p := newPipeline(deps{fetcher: fetcher, acquirer: acquirer, transcriber: transcriber, synthesizer: synth})

	results, _ := p.Process(context.Background(), []string{shortsURL})

	r := results[0]
	if !r.Success {
		t.Fatalf("expected success, got Err=%q", r.Err)
	}
	if acquirer.calls != 0 || transcriber.calls != 0 {
		t.Error("subtitle hit must never touch the audio tier")
	}
	if len(synth.inputs) != 1 || synth.inputs[0] != "Hello world" {
		t.Errorf("synthesizer inputs = %v, want [Hello world]", synth.inputs)
	}
	if r.Caption != "🩺 Hello!" {
		t.Errorf("Caption = %q", r.Caption)
	}
	if r.TranscriptPreview != "Hello world" {
		t.Errorf("TranscriptPreview = %q", r.TranscriptPreview)
	}
}

func TestAudioFallbackSuccessCleansAsset(t *testing.T) {
	asset := tempAsset(t)
	acquirer := &fakeAcquirer{fn: func() (*audio.Asset, error) { return asset, nil }}
	transcriber := &fakeTranscriber{text: "from audio"}
	p := newPipeline(deps{acquirer: acquirer, transcriber: transcriber})

	results, _ := p.Process(context.Background(), []string{shortsURL})

	if !results[0].Success {
		t.Fatalf("expected success, got Err=%q", results[0].Err)
	}
	if transcriber.calls != 1 {
		t.Errorf("transcriber calls = %d, want 1", transcriber.calls)
	}
	if asset.Exists() {
		t.Error("audio asset must be deleted after a successful fallback")
	}
}

func TestAudioFallbackFailureCleansAsset(t *testing.T) {
	asset := tempAsset(t)
	acquirer := &fakeAcquirer{fn: func() (*audio.Asset, error) { return asset, nil }}
	transcriber := &fakeTranscriber{err: fmt.Errorf("speech service unavailable")}
	p := newPipeline(deps{acquirer: acquirer, transcriber: transcriber})

	results, _ := p.Process(context.Background(), []string{shortsURL})

	r := results[0]
	if r.Success {
		t.Error("transcription failure should fail the URL")
	}
	if r.Err != transcriptUnavailableReason {
		t.Errorf("Err = %q, want %q", r.Err, transcriptUnavailableReason)
	}
	if asset.Exists() {
		t.Error("audio asset must be deleted even when transcription fails")
	}
}

func TestToolErrorStillFallsBack(t *testing.T) {
	fetcher := &fakeFetcher{result: subtitle.Result{Status: subtitle.ToolError, Reason: "exit status 1"}}
	asset := tempAsset(t)
	acquirer := &fakeAcquirer{fn: func() (*audio.Asset, error) { return asset, nil }}
	transcriber := &fakeTranscriber{text: "recovered"}
	p := newPipeline(deps{fetcher: fetcher, acquirer: acquirer, transcriber: transcriber})

	results, _ := p.Process(context.Background(), []string{shortsURL})

	if !results[0].Success {
		t.Errorf("tool error should degrade to the audio tier, got Err=%q", results[0].Err)
	}
	if acquirer.calls != 1 {
		t.Errorf("acquirer calls = %d, want 1", acquirer.calls)
	}
}

func TestAcquireFailure(t *testing.T) {
	synth := &fakeSynthesizer{}
	p := newPipeline(deps{synthesizer: synth})

	results, _ := p.Process(context.Background(), []string{shortsURL})

	r := results[0]
	if r.Success {
		t.Error("expected failure when no audio could be acquired")
	}
	if r.Err != transcriptUnavailableReason {
		t.Errorf("Err = %q, want %q", r.Err, transcriptUnavailableReason)
	}
	if synth.calls != 0 {
		t.Error("synthesizer must not run without a transcript")
	}
}

func TestSentinelCaptionCountsAsCompleted(t *testing.T) {
	fetcher := &fakeFetcher{result: subtitle.Result{Status: subtitle.Found, Text: "text"}}
	synth := &fakeSynthesizer{caption: caption.ErrorCaptionPrefix + "quota exceeded"}
	p := newPipeline(deps{fetcher: fetcher, synthesizer: synth})

	results, summary := p.Process(context.Background(), []string{shortsURL})

	if !results[0].Success {
		t.Error("sentinel caption should still count as a completed result")
	}
	if summary.Succeeded != 1 {
		t.Errorf("Succeeded = %d, want 1", summary.Succeeded)
	}
}

func TestPanicInCollaboratorFailsOnlyThatURL(t *testing.T) {
	fetcher := &fakeFetcher{result: subtitle.Result{Status: subtitle.Found, Text: "text"}}
	synth := &fakeSynthesizer{panics: true}
	p := newPipeline(deps{fetcher: fetcher, synthesizer: synth})

	results, summary := p.Process(context.Background(), []string{shortsURL, shortsURL})

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2 (batch must continue past a fault)", len(results))
	}
	for i, r := range results {
		if r.Success {
			t.Errorf("result %d should have failed", i)
		}
		if !strings.Contains(r.Err, "internal error") {
			t.Errorf("result %d Err = %q", i, r.Err)
		}
	}
	if summary.Failed != 2 {
		t.Errorf("Failed = %d, want 2", summary.Failed)
	}
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"short kept verbatim", "Hello world", "Hello world"},
		{"exactly at limit", strings.Repeat("a", 200), strings.Repeat("a", 200)},
		{"one over limit", strings.Repeat("a", 201), strings.Repeat("a", 200) + "..."},
		{"multibyte not split", strings.Repeat("é", 250), strings.Repeat("é", 200) + "..."},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := preview(tt.in); got != tt.want {
				t.Errorf("preview() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	want := Summary{}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("empty batch summary mismatch (-want +got):\n%s", diff)
	}
}

func TestValidURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://www.youtube.com/shorts/zfqpjjxtqCk", true},
		{"https://youtube.com/shorts/abc", true},
		{"https://youtu.be/abc123", true},
		{"not-a-video-url", false},
		{"https://vimeo.com/12345", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := validURL(tt.url); got != tt.want {
				t.Errorf("validURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestParseURLList(t *testing.T) {
	input := "https://youtu.be/one\n\n  https://youtu.be/two  \n# comment\nhttps://youtu.be/three\n"

	urls, err := ParseURLList(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"https://youtu.be/one", "https://youtu.be/two", "https://youtu.be/three"}
	if diff := cmp.Diff(want, urls); diff != "" {
		t.Errorf("ParseURLList mismatch (-want +got):\n%s", diff)
	}
}
