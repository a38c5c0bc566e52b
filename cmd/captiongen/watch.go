package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jasperlabs/caption-gen/internal/report"
	"github.com/jasperlabs/caption-gen/internal/watcher"
)

func newWatchCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch a drop directory for URL-list files and process each batch",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			app, err := buildApp(ctx, cmd, *configPath)
			if err != nil {
				return err
			}

			for _, dir := range []string{app.cfg.Paths.Watch, app.cfg.Paths.Output} {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return fmt.Errorf("create directory %s: %w", dir, err)
				}
			}

			w, err := watcher.New(app.cfg.Paths.Watch, app.handleURLFile, app.log)
			if err != nil {
				return err
			}
			defer w.Stop()

			app.log.Info(ctx, "Drop URL-list files (.txt) into %s; reports land in %s", app.cfg.Paths.Watch, app.cfg.Paths.Output)
			app.log.Info(ctx, "Press Ctrl+C to stop")

			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}

// handleURLFile runs one dropped batch and writes its reports
func (a *app) handleURLFile(ctx context.Context, path string) error {
	urls, err := readURLFile(path)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		a.log.Warn(ctx, "No URLs found in %s", path)
		return nil
	}

	results, summary := a.pipe.Process(ctx, urls)

	now := time.Now()
	csvPath := filepath.Join(a.cfg.Paths.Output, report.FileName("csv", now))
	if err := writeCSVFile(csvPath, results); err != nil {
		return err
	}

	docxPath := filepath.Join(a.cfg.Paths.Output, report.FileName("docx", now))
	if err := report.WriteDocx("Caption Results", results, summary, docxPath); err != nil {
		return fmt.Errorf("write docx report: %w", err)
	}

	a.log.Info(ctx, "%s", report.RenderSummary(summary))
	a.log.Info(ctx, "Reports written: %s, %s", csvPath, docxPath)
	return nil
}
