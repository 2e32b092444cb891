package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/navarrastar/landing-backend/pkg/metrics"
	"github.com/navarrastar/landing-backend/pkg/middleware"
	"github.com/navarrastar/landing-backend/pkg/models"
)

type recordingSink struct {
	name  string
	err   error
	calls []Notification
	ctxs  []context.Context
	errs  []error
}

func (s *recordingSink) Name() string { return s.name }

func (s *recordingSink) Notify(ctx context.Context, n Notification) error {
	s.calls = append(s.calls, n)
	s.ctxs = append(s.ctxs, ctx)
	s.errs = append(s.errs, ctx.Err())
	return s.err
}

var receivedAt = time.Date(2024, 3, 1, 12, 30, 15, 250_000_000, time.UTC)

func newObserved() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func TestProcessWithoutSinks(t *testing.T) {
	logger, logs := newObserved()
	m := metrics.New()
	svc := NewLandingSubmissionService(logger, m, time.Second)

	lead := models.Lead{Schema: models.SchemaPhone, Name: "Jane", Contact: "555-1234"}
	svc.ProcessLandingSubmission(context.Background(), lead, receivedAt)

	received := logs.FilterMessage("lead received").All()
	require.Len(t, received, 1)
	fields := received[0].ContextMap()
	assert.Equal(t, "Jane", fields["name"])
	assert.Equal(t, "555-1234", fields["phone"])
	assert.Equal(t, "N/A", fields["city"])
	assert.Equal(t, "N/A", fields["note"])
	assert.Equal(t, "2024-03-01T12:30:15.250Z", fields["timestamp"])

	assert.Equal(t, 1, logs.FilterMessageSnippet("not configured").Len())
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Relays.WithLabelValues("none", metrics.RelaySkipped)))
}

func TestProcessRelaysToEverySink(t *testing.T) {
	logger, logs := newObserved()
	m := metrics.New()
	tg := &recordingSink{name: "telegram"}
	mail := &recordingSink{name: "email"}
	svc := NewLandingSubmissionService(logger, m, time.Second, tg, mail)

	lead := models.Lead{Schema: models.SchemaEmail, Name: "<b>Jane</b>", Contact: "jane@example.com", Locale: "Acme"}
	ctx := middleware.ContextWithRequestID(context.Background(), "req-1")
	svc.ProcessLandingSubmission(ctx, lead, receivedAt)

	require.Len(t, tg.calls, 1)
	require.Len(t, mail.calls, 1)
	assert.Contains(t, tg.calls[0].HTML, "&lt;b&gt;Jane&lt;/b&gt;")
	assert.Contains(t, mail.calls[0].Text, "<b>Jane</b>")
	assert.Equal(t, "New lead: <b>Jane</b> (jane@example.com)", mail.calls[0].Subject)

	_, hasDeadline := tg.ctxs[0].Deadline()
	assert.True(t, hasDeadline)

	fields := logs.FilterMessage("lead received").All()[0].ContextMap()
	assert.Equal(t, "jane@example.com", fields["email"])
	assert.Equal(t, "Acme", fields["company"])
	assert.Equal(t, "req-1", fields["request_id"])

	assert.Equal(t, 2, logs.FilterMessage("lead relayed").Len())
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Relays.WithLabelValues("telegram", metrics.RelaySent)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Relays.WithLabelValues("email", metrics.RelaySent)))
}

func TestProcessSwallowsRelayFailure(t *testing.T) {
	logger, logs := newObserved()
	m := metrics.New()
	broken := &recordingSink{name: "telegram", err: errors.New("connection refused")}
	healthy := &recordingSink{name: "email"}
	svc := NewLandingSubmissionService(logger, m, time.Second, broken, healthy)

	svc.ProcessLandingSubmission(context.Background(), models.Lead{Name: "Jane", Contact: "555"}, receivedAt)

	assert.Len(t, healthy.calls, 1, "a failing sink must not stop the others")
	failed := logs.FilterMessage("failed to relay lead").All()
	require.Len(t, failed, 1)
	assert.Equal(t, "telegram", failed[0].ContextMap()["sink"])
	assert.Equal(t, zapcore.ErrorLevel, failed[0].Level)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Relays.WithLabelValues("telegram", metrics.RelayFailed)))
}

func TestProcessIgnoresCanceledRequestContext(t *testing.T) {
	logger, _ := newObserved()
	sink := &recordingSink{name: "telegram"}
	svc := NewLandingSubmissionService(logger, metrics.New(), time.Second, sink)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc.ProcessLandingSubmission(ctx, models.Lead{Name: "Jane", Contact: "555"}, receivedAt)

	require.Len(t, sink.errs, 1)
	assert.NoError(t, sink.errs[0])
}

func TestFormatLeadMessage(t *testing.T) {
	lead := models.Lead{Schema: models.SchemaPhone, Name: "Jane", Contact: "555-1234"}
	msg := FormatLeadMessage(lead, receivedAt, false)

	want := strings.Join([]string{
		"🔔 New Lead!",
		"━━━━━━━━━━━━━━",
		"👤 Name: Jane",
		"📞 Phone: 555-1234",
		"🏙️ City: Not specified",
		"📝 Note: None",
		"━━━━━━━━━━━━━━",
		"🕐 2024-03-01T12:30:15.250Z",
	}, "\n")
	assert.Equal(t, want, msg)

	lead = models.Lead{Schema: models.SchemaEmail, Name: "Jane", Contact: "j@x.io", Locale: "A&B", Note: "hi"}
	msg = FormatLeadMessage(lead, receivedAt, true)
	assert.Contains(t, msg, "📧 Email: j@x.io")
	assert.Contains(t, msg, "🏢 Company: A&amp;B")
	assert.Contains(t, msg, "📝 Note: hi")
}

func TestRecordEvent(t *testing.T) {
	logger, logs := newObserved()
	svc := NewAnalyticsService(logger)

	event := models.AnalyticsEvent{Event: models.EventCTAClick, Data: map[string]any{"action": "hero"}}
	svc.RecordEvent(context.Background(), event, receivedAt)
	svc.RecordEvent(context.Background(), event, receivedAt)
	svc.RecordEvent(context.Background(), models.AnalyticsEvent{}, receivedAt)

	entries := logs.FilterMessage("analytics event").All()
	require.Len(t, entries, 3, "identical events are not deduplicated")
	assert.Equal(t, entries[0].ContextMap(), entries[1].ContextMap())
	assert.Equal(t, `{"action":"hero"}`, entries[0].ContextMap()["data"])
	assert.Equal(t, "", entries[2].ContextMap()["event"])
	assert.Equal(t, "", entries[2].ContextMap()["data"])
}
