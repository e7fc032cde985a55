package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newCapabilityCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "capability",
		Short: "Report which validation tiers this device supports",
		Long: `Capability inspects the local model assets, configured providers and
hardware class, and prints the resulting device profile.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			_, detector, closeAll, err := buildEngine(cfg, credentialsFromEnv())
			if err != nil {
				return err
			}
			defer closeAll(cmd.Context())

			data, err := json.MarshalIndent(detector.Detect(), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Engine config file (defaults to built-in tunables)")

	return cmd
}
