package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jasperlabs/caption-gen/internal/pipeline"
	"github.com/jasperlabs/caption-gen/internal/report"
)

func newRunCommand(configPath *string) *cobra.Command {
	var (
		urlFile  string
		csvPath  string
		docxPath string
	)

	cmd := &cobra.Command{
		Use:   "run [url...]",
		Short: "Process YouTube Shorts URLs and print generated captions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := buildApp(ctx, cmd, *configPath)
			if err != nil {
				return err
			}

			urls := append([]string{}, args...)
			if urlFile != "" {
				fromFile, err := readURLFile(urlFile)
				if err != nil {
					return err
				}
				urls = append(urls, fromFile...)
			}
			if len(urls) == 0 {
				return fmt.Errorf("no URLs given: pass them as arguments or with --file")
			}

			results, summary := app.pipe.Process(ctx, urls)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, report.RenderTable(results))
			fmt.Fprintln(out, report.RenderSummary(summary))

			if csvPath != "" {
				if err := writeCSVFile(csvPath, results); err != nil {
					return err
				}
				fmt.Fprintf(out, "CSV written to %s\n", csvPath)
			}
			if docxPath != "" {
				if err := report.WriteDocx("Caption Results", results, summary, docxPath); err != nil {
					return fmt.Errorf("write docx report: %w", err)
				}
				fmt.Fprintf(out, "Report written to %s\n", docxPath)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&urlFile, "file", "", "file with one URL per line")
	cmd.Flags().StringVar(&csvPath, "csv", "", "write the results as CSV to this path")
	cmd.Flags().StringVar(&docxPath, "docx", "", "write the results as a docx report to this path")

	return cmd
}

func readURLFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open URL file: %w", err)
	}
	defer f.Close()

	urls, err := pipeline.ParseURLList(f)
	if err != nil {
		return nil, fmt.Errorf("read URL file: %w", err)
	}
	return urls, nil
}

func writeCSVFile(path string, results []pipeline.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create CSV file: %w", err)
	}
	defer f.Close()

	if err := report.WriteCSV(f, results); err != nil {
		return fmt.Errorf("write CSV: %w", err)
	}
	return nil
}
