package landing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/navarrastar/landing-backend/pkg/models"
)

// maxResponseBody caps how much of a response is read
const maxResponseBody = 1 << 16

// Client defines the interface for calling the landing page backend
type Client interface {
	// SubmitLead posts a lead. A non-nil error means the response never
	// arrived or could not be decoded; a rejected lead is a Result with OK
	// false.
	SubmitLead(ctx context.Context, submission models.LeadSubmission) (models.Result, error)
	Track(ctx context.Context, event models.AnalyticsEvent) error
	Health(ctx context.Context) (models.HealthStatus, error)
}

type clientImpl struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client for the server at baseURL
func NewClient(httpClient *http.Client, baseURL string) Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &clientImpl{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
	}
}

func (c *clientImpl) SubmitLead(ctx context.Context, submission models.LeadSubmission) (models.Result, error) {
	var result models.Result
	if err := c.do(ctx, http.MethodPost, "/api/lead", submission, &result); err != nil {
		return models.Result{}, err
	}
	return result, nil
}

func (c *clientImpl) Track(ctx context.Context, event models.AnalyticsEvent) error {
	var result models.Result
	if err := c.do(ctx, http.MethodPost, "/api/analytics", event, &result); err != nil {
		return err
	}
	if !result.OK {
		return fmt.Errorf("analytics event not accepted: %s", result.Error)
	}
	return nil
}

func (c *clientImpl) Health(ctx context.Context) (models.HealthStatus, error) {
	var status models.HealthStatus
	if err := c.do(ctx, http.MethodGet, "/health", nil, &status); err != nil {
		return models.HealthStatus{}, err
	}
	return status, nil
}

// do sends body as JSON and decodes the response into out whatever the
// status code, since the API reports failures in the body.
func (c *clientImpl) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		jsonPayload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error creating payload: %w", err)
		}
		reader = bytes.NewReader(jsonPayload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("error decoding response (status=%d): %w", resp.StatusCode, err)
	}
	return nil
}
