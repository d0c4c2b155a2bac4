package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the hiring service is reachable",
	RunE: run(func(cmd *cobra.Command, _ []string, env *environment) error {
		health, err := env.client.Health(cmd.Context())
		if err != nil {
			return fmt.Errorf("service at %s is unreachable: %w", env.config.APIURL, err)
		}

		env.logger.Debug("service is healthy", zap.String("status", health.Status))
		return env.print(cmd.OutOrStdout(), health, func() string {
			return fmt.Sprintf("%s: %s", env.config.APIURL, health.Status)
		})
	}),
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
