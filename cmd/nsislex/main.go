package main

import (
	"context"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	highlight_cmd "github.com/walteh/nsislex/cmd/nsislex/highlight"
	outline_cmd "github.com/walteh/nsislex/cmd/nsislex/outline"
	"gitlab.com/tozd/go/errors"
)

func main() {
	if err := run(); err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	var debugLogging bool

	rootCmd := &cobra.Command{
		Use:   "nsislex",
		Short: "semantic classification and fold outlines for NSIS scripts",
	}

	rootCmd.PersistentFlags().BoolVar(&debugLogging, "debug", false, "enable debug logging")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		level := zerolog.InfoLevel
		if debugLogging {
			level = zerolog.DebugLevel
		}
		logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
			Level(level).
			With().
			Timestamp().
			Logger()
		cmd.SetContext(logger.WithContext(cmd.Context()))
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		rootCmd.Version = "unknown"
	} else {
		rootCmd.Version = info.Main.Version
	}

	rootCmd.AddCommand(highlight_cmd.NewHighlightCommand())
	rootCmd.AddCommand(outline_cmd.NewOutlineCommand())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		return errors.Errorf("failed to execute command: %w", err)
	}

	return nil
}
