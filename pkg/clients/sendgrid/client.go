package sendgrid

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/rest"
	sg "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Client defines the interface for emailing lead notifications through SendGrid
type Client interface {
	SendMessage(ctx context.Context, subject, text string) error
}

// sender is satisfied by *sg.Client
type sender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

type clientImpl struct {
	sender sender
	from   *mail.Email
	to     *mail.Email
}

// NewClient creates a SendGrid client that mails every notification from one
// address to one operator inbox
func NewClient(apiKey, from, to string) Client {
	return newClient(sg.NewSendClient(apiKey), from, to)
}

func newClient(s sender, from, to string) *clientImpl {
	return &clientImpl{
		sender: s,
		from:   mail.NewEmail("Landing Page", strings.TrimSpace(from)),
		to:     mail.NewEmail("", strings.TrimSpace(to)),
	}
}

func (c *clientImpl) SendMessage(ctx context.Context, subject, text string) error {
	message := mail.NewSingleEmail(c.from, subject, c.to, text, "")

	resp, err := c.sender.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("error from SendGrid API: status=%d body=%s", resp.StatusCode, strings.TrimSpace(resp.Body))
	}

	return nil
}
