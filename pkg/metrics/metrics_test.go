package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistriesAreIndependent(t *testing.T) {
	a, b := New(), New()

	a.Leads.WithLabelValues(LeadAccepted).Inc()

	assert.Equal(t, float64(1), testutil.ToFloat64(a.Leads.WithLabelValues(LeadAccepted)))
	assert.Equal(t, float64(0), testutil.ToFloat64(b.Leads.WithLabelValues(LeadAccepted)))
}

func TestHandlerExposesCounters(t *testing.T) {
	m := New()
	m.Relays.WithLabelValues("telegram", RelayFailed).Inc()

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `landing_relay_notifications_total{outcome="failed",sink="telegram"} 1`)
	assert.Contains(t, rr.Body.String(), "go_goroutines")
}
