package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the search API is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := root.client()
			if err != nil {
				return err
			}

			h, err := client.Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("health check failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "api:     %s\n", client.BaseURL())
			fmt.Fprintf(cmd.OutOrStdout(), "status:  %s\n", h.Status)
			if h.ElasticStatus != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "elastic: %s\n", h.ElasticStatus)
			}
			if h.Status != "ok" {
				return fmt.Errorf("api reports status %q", h.Status)
			}
			return nil
		},
	}
}
