package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/jasperlabs/caption-gen/internal/pipeline"
)

func sampleResults() []pipeline.Result {
	return []pipeline.Result{
		{
			URL:               "https://www.youtube.com/shorts/abc",
			Success:           true,
			Caption:           "🩺 A healthy habit!",
			TranscriptPreview: "some spoken words",
			Elapsed:           1500 * time.Millisecond,
		},
		{
			URL:     "not-a-video-url",
			Success: false,
			Err:     "Invalid YouTube URL",
			Elapsed: 2 * time.Millisecond,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleResults()); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading back csv: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(records))
	}

	wantHeader := []string{"url", "success", "caption", "transcript_preview", "error", "elapsed_seconds"}
	if diff := cmp.Diff(wantHeader, records[0]); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}

	wantRow := []string{"https://www.youtube.com/shorts/abc", "true", "🩺 A healthy habit!", "some spoken words", "", "1.50"}
	if diff := cmp.Diff(wantRow, records[1]); diff != "" {
		t.Errorf("success row mismatch (-want +got):\n%s", diff)
	}

	if records[2][1] != "false" || records[2][4] != "Invalid YouTube URL" {
		t.Errorf("failure row = %v", records[2])
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV(nil) error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Errorf("empty batch should write header only, got %d lines", len(lines))
	}
}

func TestFileName(t *testing.T) {
	ts := time.Date(2026, 8, 31, 15, 30, 0, 0, time.UTC)
	if got := FileName("csv", ts); got != "captions_20260831_153000.csv" {
		t.Errorf("FileName() = %q", got)
	}
	if got := FileName("docx", ts); got != "captions_20260831_153000.docx" {
		t.Errorf("FileName() = %q", got)
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(sampleResults())

	for _, want := range []string{"https://www.youtube.com/shorts/abc", "ok", "failed", "Invalid YouTube URL", "1.5s"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSummary(t *testing.T) {
	tests := []struct {
		name    string
		summary pipeline.Summary
		want    string
	}{
		{
			name:    "two thirds",
			summary: pipeline.Summary{Total: 3, Succeeded: 2, Failed: 1, SuccessRate: 2.0 / 3.0},
			want:    "Total: 3  Succeeded: 2  Failed: 1  Success rate: 66.7%",
		},
		{
			name:    "empty batch",
			summary: pipeline.Summary{},
			want:    "Total: 0  Succeeded: 0  Failed: 0  Success rate: 0.0%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderSummary(tt.summary); got != tt.want {
				t.Errorf("RenderSummary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteDocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.docx")

	err := WriteDocx("Caption Results", sampleResults(), pipeline.Summarize(sampleResults()), path)
	if err != nil {
		t.Fatalf("WriteDocx() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("report file is empty")
	}
}
