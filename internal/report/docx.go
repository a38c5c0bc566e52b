package report

import (
	"fmt"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/jasperlabs/caption-gen/internal/pipeline"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// WriteDocx writes a styled results document: a title, the aggregate
// summary, then one section per URL.
func WriteDocx(title string, results []pipeline.Result, summary pipeline.Summary, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addStyledRun(doc.AddParagraph(""), title, true, 16)
	addStyledRun(doc.AddParagraph(""), RenderSummary(summary), false, fontSize)
	doc.AddParagraph("")

	for i, r := range results {
		addStyledRun(doc.AddParagraph(""), fmt.Sprintf("%d. %s", i+1, r.URL), true, 14)

		if r.Success {
			addStyledRun(doc.AddParagraph(""), "Caption: "+r.Caption, false, fontSize)
			if r.TranscriptPreview != "" {
				addStyledRun(doc.AddParagraph(""), "Transcript preview: "+r.TranscriptPreview, false, fontSize)
			}
		} else {
			addStyledRun(doc.AddParagraph(""), "Error: "+r.Err, false, fontSize)
		}

		addStyledRun(doc.AddParagraph(""), fmt.Sprintf("Processing time: %.1fs", r.Elapsed.Seconds()), false, fontSize)
		doc.AddParagraph("")
	}

	return doc.SaveTo(outputPath)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
