package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verdict",
		Short: "Verdict - trivia answer validation engine",
		Long: `Verdict judges whether a contestant's answer is equivalent to a known
correct answer. It runs a tiered chain: deterministic rules first, then
embedding similarity, then an LLM judge, honoring the competition's
strictness policy and the device's capability.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newValidateCommand())
	cmd.AddCommand(newVectorsCommand())
	cmd.AddCommand(newCapabilityCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
