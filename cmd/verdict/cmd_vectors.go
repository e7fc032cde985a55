package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quizkit/verdict/internal/conformance"
	"github.com/quizkit/verdict/internal/match"
)

func newVectorsCommand() *cobra.Command {
	var configPath string
	var maxTier int

	cmd := &cobra.Command{
		Use:   "vectors VECTOR_FILE",
		Short: "Replay a conformance vector file against this implementation",
		Long: `Vectors replays a shared cross-platform test-vector file and reports any
case this implementation does not reproduce. Vectors requiring a tier the
device cannot reach are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := conformance.Load(args[0])
			if err != nil {
				return err
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			validator, detector, closeAll, err := buildEngine(cfg, credentialsFromEnv())
			if err != nil {
				return err
			}
			defer closeAll(cmd.Context())

			capability := detector.Detect()
			if maxTier >= 0 && match.Tier(maxTier) < capability.MaxSupportedTier {
				capability.MaxSupportedTier = match.Tier(maxTier)
			}

			failures, err := conformance.Run(cmd.Context(), validator, file, capability)
			if err != nil {
				return err
			}

			for _, failure := range failures {
				fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s\n", failure)
			}
			if len(failures) > 0 {
				return &CheckFailureError{
					Message: fmt.Sprintf("%d of %d vectors failed", len(failures), len(file.Vectors)),
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "all reachable vectors conform (%d total, max tier %d)\n",
				len(file.Vectors), capability.MaxSupportedTier)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Engine config file (defaults to built-in tunables)")
	cmd.Flags().IntVar(&maxTier, "max-tier", -1, "Cap the tier ceiling below the detected capability")

	return cmd
}
