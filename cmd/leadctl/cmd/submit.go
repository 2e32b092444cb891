package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/navarrastar/landing-backend/pkg/form"
	"github.com/navarrastar/landing-backend/pkg/models"
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "submits a lead through the form flow",
	RunE:  runSubmit,
}

var (
	lead models.LeadSubmission
	lang string
)

func init() {
	submitCmd.Flags().StringVarP(&lead.Name, "name", "n", "", "visitor name")
	submitCmd.Flags().StringVarP(&lead.Phone, "phone", "p", "", "phone number")
	submitCmd.Flags().StringVarP(&lead.Email, "email", "e", "", "email address")
	submitCmd.Flags().StringVar(&lead.City, "city", "", "city")
	submitCmd.Flags().StringVar(&lead.Company, "company", "", "company")
	submitCmd.Flags().StringVar(&lead.Note, "note", "", "free form note")
	submitCmd.Flags().StringVar(&lang, "lang", "en", "language of the status messages")
}

func runSubmit(cmd *cobra.Command, _ []string) error {
	client := newClient()
	tracker := form.NewBeaconTracker(client, timeout)
	defer tracker.Wait()

	view := form.NewMemoryView(lead, "Submit")
	view.OnStatus = func(text string, kind form.StatusKind) {
		if text == "" {
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", kind, text)
	}

	controller := form.NewController(view, client, tracker, form.MessagesFor(lang))
	if controller.Submit(cmd.Context()) != form.Success {
		return errors.New("lead was not accepted")
	}
	return nil
}
