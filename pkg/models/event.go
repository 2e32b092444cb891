package models

// AnalyticsEvent is an advisory beacon sent by the landing page.
// No field is required.
type AnalyticsEvent struct {
	Event string         `json:"event"`
	Data  map[string]any `json:"data,omitempty"`
}

// Tracked event names emitted by the landing page
const (
	EventPageView    = "page_view"
	EventCTAClick    = "cta_click"
	EventFormSuccess = "form_success"
	EventFormError   = "form_error"
)

// Result is the acknowledgement returned by the JSON endpoints
type Result struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// HealthStatus is returned by the health endpoint
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
