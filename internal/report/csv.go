package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jasperlabs/caption-gen/internal/pipeline"
)

var csvHeader = []string{"url", "success", "caption", "transcript_preview", "error", "elapsed_seconds"}

// WriteCSV writes the tabular export: one row per result, in batch order
func WriteCSV(w io.Writer, results []pipeline.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, r := range results {
		record := []string{
			r.URL,
			strconv.FormatBool(r.Success),
			r.Caption,
			r.TranscriptPreview,
			r.Err,
			strconv.FormatFloat(r.Elapsed.Seconds(), 'f', 2, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// FileName builds a timestamped export name like captions_20260831_153000.csv
func FileName(ext string, ts time.Time) string {
	return fmt.Sprintf("captions_%s.%s", ts.Format("20060102_150405"), ext)
}
