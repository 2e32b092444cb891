package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultAPIURL is the public Bot API host
const DefaultAPIURL = "https://api.telegram.org"

// maxErrorBody caps how much of a failed response is copied into the error
const maxErrorBody = 1 << 16

// Client defines the interface for interacting with the Telegram Bot API
type Client interface {
	SendMessage(ctx context.Context, text string) error
}

type clientImpl struct {
	httpClient *http.Client
	baseURL    string
	botToken   string
	chatID     string
}

// NewClient creates a new Telegram client that posts to a single chat
func NewClient(httpClient *http.Client, baseURL, botToken, chatID string) Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}

	return &clientImpl{
		httpClient: httpClient,
		baseURL:    baseURL,
		botToken:   botToken,
		chatID:     chatID,
	}
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

func (c *clientImpl) SendMessage(ctx context.Context, text string) error {
	sendURL := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.botToken)

	jsonPayload, err := json.Marshal(sendMessageRequest{
		ChatID:    c.chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sendURL, bytes.NewReader(jsonPayload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error would leak the token embedded in the path
		return fmt.Errorf("error sending message: %w", redact(err, c.botToken))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("error from Telegram API: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return nil
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.err }

func redact(err error, secret string) error {
	if secret == "" || !strings.Contains(err.Error(), secret) {
		return err
	}
	return &redactedError{msg: strings.ReplaceAll(err.Error(), secret, "<redacted>"), err: err}
}
