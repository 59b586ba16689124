package main

import (
	"context"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/walteh/gotags/cmd/gotags/replay"
	"github.com/walteh/gotags/cmd/gotags/scan"
	"gitlab.com/tozd/go/errors"
)

func main() {
	if err := run(); err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:           "gotags",
		Short:         "Track @mention and #hashtag tags while text is edited",
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: `gotags replays scripted editing sessions against the tagging engine and
checks the resulting text, tags and candidate lists. It can also report the
tagging context at a single caret position.`,
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		rootCmd.Version = "unknown"
	} else {
		rootCmd.Version = info.Main.Version
	}

	cmdVersion := &cobra.Command{
		Use: "raw-version",
		Run: func(cmdz *cobra.Command, args []string) {
			cmdz.Println(rootCmd.Version)
		},
		Hidden: true,
	}

	rootCmd.AddCommand(cmdVersion)
	rootCmd.AddCommand(replay.NewReplayCommand())
	rootCmd.AddCommand(scan.NewScanCommand())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		return errors.Errorf("failed to execute command: %w", err)
	}

	return nil
}
