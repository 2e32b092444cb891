package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "checks that the backend is up",
	RunE: func(cmd *cobra.Command, _ []string) error {
		status, err := newClient().Health(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", status.Status, status.Timestamp)
		return nil
	},
}
