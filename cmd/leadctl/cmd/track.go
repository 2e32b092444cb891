package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/navarrastar/landing-backend/pkg/models"
)

var trackCmd = &cobra.Command{
	Use:   "track <event>",
	Short: "sends one analytics event",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrack,
}

var data string

func init() {
	trackCmd.Flags().StringVarP(&data, "data", "d", "{}", "event data as a JSON object")
}

func runTrack(cmd *cobra.Command, args []string) error {
	if args[0] == "" {
		return errors.New("event cannot be empty")
	}

	event := models.AnalyticsEvent{Event: args[0]}
	if err := json.Unmarshal([]byte(data), &event.Data); err != nil {
		return fmt.Errorf("error parsing --data: %w", err)
	}

	if err := newClient().Track(cmd.Context(), event); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "tracked %s\n", event.Event)
	return nil
}
