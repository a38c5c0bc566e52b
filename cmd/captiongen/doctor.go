package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jasperlabs/caption-gen/pkg/executor"
)

// doctor reports on external dependencies without requiring a credential,
// so it stays usable on a box that is not yet set up
func newDoctorCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check external tools and credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, *configPath)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			exec := executor.New()
			out := cmd.OutOrStdout()
			var problems []string

			if version, err := exec.Execute(ctx, cfg.YTDLP.BinaryPath, "--version"); err != nil {
				problems = append(problems, "yt-dlp not available")
				fmt.Fprintf(out, "yt-dlp: NOT FOUND (%v)\n", err)
			} else {
				fmt.Fprintf(out, "yt-dlp: %s\n", strings.TrimSpace(version))
			}

			if _, err := exec.Execute(ctx, "ffmpeg", "-version"); err != nil {
				problems = append(problems, "ffmpeg not available")
				fmt.Fprintln(out, "ffmpeg: NOT FOUND")
			} else {
				fmt.Fprintln(out, "ffmpeg: ok")
			}

			if os.Getenv(apiKeyEnv) == "" {
				problems = append(problems, apiKeyEnv+" not set")
				fmt.Fprintf(out, "%s: NOT SET\n", apiKeyEnv)
			} else {
				fmt.Fprintf(out, "%s: configured\n", apiKeyEnv)
			}

			if len(problems) > 0 {
				return fmt.Errorf("%s", strings.Join(problems, "; "))
			}
			return nil
		},
	}
}
