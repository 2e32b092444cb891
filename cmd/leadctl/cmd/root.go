package cmd

import (
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/navarrastar/landing-backend/pkg/clients/landing"
)

var (
	serverURL string
	timeout   time.Duration

	rootCmd = &cobra.Command{
		Use:          "leadctl",
		Short:        "Talk to a landing page backend",
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", "http://localhost:3000", "landing backend base URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")

	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(trackCmd)
	rootCmd.AddCommand(healthCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func newClient() landing.Client {
	return landing.NewClient(&http.Client{Timeout: timeout}, serverURL)
}
