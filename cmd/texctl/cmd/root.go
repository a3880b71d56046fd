package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jpfielding/texel.go/pkg/logging"
	"github.com/spf13/cobra"
)

func NewRoot(ctx context.Context, gitsha string) *cobra.Command {
	var (
		logCloser io.Closer
		level     slog.Level
	)
	cmd := &cobra.Command{
		Use:   "texctl",
		Short: "a CLI to inspect texel formats and texture layouts",
		Long:  "texctl lists the texel format registry, prints texture storage layouts and converts raw surfaces between formats.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logLevel, _ := cmd.Flags().GetString("log-level")
			logFile, _ := cmd.Flags().GetString("log-file")
			logJSON, _ := cmd.Flags().GetBool("log-json")

			err := level.UnmarshalText([]byte(strings.ToUpper(logLevel)))
			if err != nil {
				level = slog.LevelInfo
			}
			var w io.Writer = cmd.ErrOrStderr()
			if logFile != "" {
				rw := logging.RotatingWriter(logFile, 10)
				logCloser = rw
				w = io.MultiWriter(w, rw)
			}
			slog.SetDefault(logging.Logger(w, logJSON, level))
			if err != nil {
				slog.WarnContext(ctx, "Invalid log level, defaulting to INFO", "level", logLevel, "error", err)
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logCloser == nil {
				return
			}
			// later records go to stderr only
			logJSON, _ := cmd.Flags().GetBool("log-json")
			slog.SetDefault(logging.Logger(cmd.ErrOrStderr(), logJSON, level))
			if err := logCloser.Close(); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "failed to close log file:", err)
			}
			logCloser = nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			printCommandTree(cmd.OutOrStdout(), cmd, 0)
		},
	}
	cmd.AddCommand(
		NewVersionCmd(ctx, gitsha),
		NewFormatsCmd(ctx),
		NewInfoCmd(ctx),
		NewLayoutCmd(ctx),
		NewConvertCmd(ctx),
	)
	pf := cmd.PersistentFlags()
	pf.String("log-level", "INFO", "Log level (DEBUG, INFO, WARN, ERROR)")
	pf.String("log-file", "", "also append logs to this file, rotated")
	pf.Bool("log-json", false, "log as json")
	return cmd
}

func printCommandTree(w io.Writer, cmd *cobra.Command, indent int) {
	fmt.Fprintln(w, strings.Repeat("\t", indent), cmd.Use+":", cmd.Short)
	for _, subCmd := range cmd.Commands() {
		printCommandTree(w, subCmd, indent+1)
	}
}

func NewVersionCmd(ctx context.Context, gitsha string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "git sha for this build",
		Long:  "git sha for this build",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), gitsha)
		},
	}
	return cmd
}

// openIn opens a path for reading; "-" is stdin.
func openIn(path string) (io.ReadCloser, error) {
	path = strings.TrimPrefix(path, "file://")
	if path == "-" || path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, nil
}
