package services

import (
	"context"

	"github.com/navarrastar/landing-backend/pkg/clients/sendgrid"
	"github.com/navarrastar/landing-backend/pkg/clients/telegram"
)

// Notification is a lead rendered for delivery to a sink
type Notification struct {
	Subject string
	Text    string
	HTML    string
}

// Sink is a downstream channel that receives lead notifications
type Sink interface {
	Name() string
	Notify(ctx context.Context, n Notification) error
}

type telegramSink struct {
	client telegram.Client
}

// NewTelegramSink relays notifications to a Telegram chat
func NewTelegramSink(client telegram.Client) Sink {
	return &telegramSink{client: client}
}

func (s *telegramSink) Name() string { return "telegram" }

func (s *telegramSink) Notify(ctx context.Context, n Notification) error {
	return s.client.SendMessage(ctx, n.HTML)
}

type emailSink struct {
	client sendgrid.Client
}

// NewEmailSink relays notifications to an operator inbox
func NewEmailSink(client sendgrid.Client) Sink {
	return &emailSink{client: client}
}

func (s *emailSink) Name() string { return "email" }

func (s *emailSink) Notify(ctx context.Context, n Notification) error {
	return s.client.SendMessage(ctx, n.Subject, n.Text)
}
