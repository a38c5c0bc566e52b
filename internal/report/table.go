package report

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/jasperlabs/caption-gen/internal/pipeline"
)

// RenderTable renders the batch results as a terminal table
func RenderTable(results []pipeline.Result) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "URL", "Status", "Caption / Error", "Time"})

	for i, r := range results {
		status := "ok"
		detail := r.Caption
		if !r.Success {
			status = "failed"
			detail = r.Err
		}
		tw.AppendRow(table.Row{i + 1, r.URL, status, detail, fmt.Sprintf("%.1fs", r.Elapsed.Seconds())})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, WidthMax: 60},
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

// RenderSummary renders the aggregate line shown under the table
func RenderSummary(s pipeline.Summary) string {
	return fmt.Sprintf("Total: %d  Succeeded: %d  Failed: %d  Success rate: %.1f%%",
		s.Total, s.Succeeded, s.Failed, s.SuccessRate*100)
}
