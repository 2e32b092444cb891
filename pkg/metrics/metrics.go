// Package metrics exposes operational counters for the lead pipeline.
// Analytics events are not counted; they only produce a log line.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Lead outcomes
const (
	LeadAccepted = "accepted"
	LeadRejected = "rejected"
	LeadInvalid  = "invalid_body"
)

// Relay outcomes
const (
	RelaySent    = "sent"
	RelayFailed  = "failed"
	RelaySkipped = "skipped"
)

// Metrics groups the collectors registered on one registry
type Metrics struct {
	registry *prometheus.Registry

	Leads    *prometheus.CounterVec
	Relays   *prometheus.CounterVec
	Requests *prometheus.CounterVec
}

// New registers the collectors on a fresh registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Leads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "landing",
			Name:      "leads_total",
			Help:      "Lead submissions by validation outcome.",
		}, []string{"result"}),
		Relays: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "landing",
			Name:      "relay_notifications_total",
			Help:      "Lead notifications by sink and delivery outcome.",
		}, []string{"sink", "outcome"}),
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "landing",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, matched route and status code.",
		}, []string{"method", "route", "status"}),
	}
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
