package services

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/navarrastar/landing-backend/pkg/middleware"
	"github.com/navarrastar/landing-backend/pkg/models"
)

// AnalyticsService records advisory events from the landing page
type AnalyticsService interface {
	RecordEvent(ctx context.Context, event models.AnalyticsEvent, receivedAt time.Time)
}

type analyticsServiceImpl struct {
	logger *zap.Logger
}

// NewAnalyticsService creates a service that writes one log line per event
func NewAnalyticsService(logger *zap.Logger) AnalyticsService {
	return &analyticsServiceImpl{logger: logger}
}

// RecordEvent never fails. Identical events produce identical, separate lines.
func (s *analyticsServiceImpl) RecordEvent(ctx context.Context, event models.AnalyticsEvent, receivedAt time.Time) {
	data := ""
	if len(event.Data) > 0 {
		if encoded, err := json.Marshal(event.Data); err == nil {
			data = string(encoded)
		}
	}

	s.logger.Info("analytics event",
		zap.String("timestamp", FormatTimestamp(receivedAt)),
		zap.String("event", event.Event),
		zap.String("data", data),
		zap.String("request_id", middleware.RequestIDFromContext(ctx)),
	)
}
