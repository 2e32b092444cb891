package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/navarrastar/landing-backend/pkg/logging"
	"github.com/navarrastar/landing-backend/pkg/metrics"
	"github.com/navarrastar/landing-backend/pkg/middleware"
	"github.com/navarrastar/landing-backend/pkg/models"
	"github.com/navarrastar/landing-backend/pkg/utils"
)

// LandingSubmissionService defines the interface for handling form submissions
type LandingSubmissionService interface {
	ProcessLandingSubmission(ctx context.Context, lead models.Lead, receivedAt time.Time)
}

type landingSubmissionServiceImpl struct {
	sinks        []Sink
	relayTimeout time.Duration
	logger       *zap.Logger
	metrics      *metrics.Metrics
}

// NewLandingSubmissionService creates a new submission service. Leads are
// relayed to every sink in order; an empty list disables relaying.
func NewLandingSubmissionService(
	logger *zap.Logger,
	m *metrics.Metrics,
	relayTimeout time.Duration,
	sinks ...Sink,
) LandingSubmissionService {
	return &landingSubmissionServiceImpl{
		sinks:        sinks,
		relayTimeout: relayTimeout,
		logger:       logger,
		metrics:      m,
	}
}

// ProcessLandingSubmission logs the lead and relays it downstream. Relay
// failures are logged and counted but never returned: the visitor has already
// been told the lead was received.
func (s *landingSubmissionServiceImpl) ProcessLandingSubmission(ctx context.Context, lead models.Lead, receivedAt time.Time) {
	requestID := middleware.RequestIDFromContext(ctx)

	s.logger.Info("lead received",
		zap.String("timestamp", FormatTimestamp(receivedAt)),
		zap.String("schema", string(lead.Schema)),
		zap.String("name", lead.Name),
		zap.String(lead.Schema.ContactLabel(), lead.Contact),
		zap.String(lead.Schema.LocaleLabel(), logging.OrNA(lead.Locale)),
		zap.String("note", logging.OrNA(lead.Note)),
		zap.String("fingerprint", utils.Fingerprint(lead.Contact)),
		zap.String("request_id", requestID),
	)

	if len(s.sinks) == 0 {
		s.logger.Info("notification sink not configured - skipping notification", zap.String("request_id", requestID))
		s.metrics.Relays.WithLabelValues("none", metrics.RelaySkipped).Inc()
		return
	}

	n := Notification{
		Subject: FormatLeadSubject(lead),
		Text:    FormatLeadMessage(lead, receivedAt, false),
		HTML:    FormatLeadMessage(lead, receivedAt, true),
	}

	// The visitor may disconnect as soon as the response is flushed; the relay
	// should still finish within its own deadline.
	relayCtx := context.WithoutCancel(ctx)

	for _, sink := range s.sinks {
		s.relay(relayCtx, sink, n, requestID)
	}
}

func (s *landingSubmissionServiceImpl) relay(ctx context.Context, sink Sink, n Notification, requestID string) {
	ctx, cancel := context.WithTimeout(ctx, s.relayTimeout)
	defer cancel()

	if err := sink.Notify(ctx, n); err != nil {
		s.logger.Error("failed to relay lead",
			zap.String("sink", sink.Name()),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		s.metrics.Relays.WithLabelValues(sink.Name(), metrics.RelayFailed).Inc()
		return
	}

	s.logger.Info("lead relayed", zap.String("sink", sink.Name()), zap.String("request_id", requestID))
	s.metrics.Relays.WithLabelValues(sink.Name(), metrics.RelaySent).Inc()
}
