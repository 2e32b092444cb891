package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/navarrastar/landing-backend/pkg/metrics"
	"github.com/navarrastar/landing-backend/pkg/middleware"
	"github.com/navarrastar/landing-backend/pkg/models"
	"github.com/navarrastar/landing-backend/pkg/services"
)

// maxBodyBytes bounds the JSON bodies accepted by both endpoints
const maxBodyBytes = 64 << 10

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	schema            models.LeadSchema
	submissionService services.LandingSubmissionService
	analyticsService  services.AnalyticsService
	metrics           *metrics.Metrics
	logger            *zap.Logger
	now               func() time.Time
}

// NewHandlers creates a new Handlers instance
func NewHandlers(
	schema models.LeadSchema,
	submissionService services.LandingSubmissionService,
	analyticsService services.AnalyticsService,
	m *metrics.Metrics,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		schema:            schema,
		submissionService: submissionService,
		analyticsService:  analyticsService,
		metrics:           m,
		logger:            logger,
		now:               time.Now,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthStatus{
		Status:    "ok",
		Timestamp: services.FormatTimestamp(h.now()),
	})
}

// HandleLead validates a lead and hands it to the submission service. Once
// validation passes the visitor always gets ok=true: the promise is
// "received", not "delivered downstream".
func (h *Handlers) HandleLead(c *gin.Context) {
	var submission models.LeadSubmission

	if err := decodeJSON(c, &submission); err != nil {
		h.logger.Warn("invalid lead body",
			zap.Error(err),
			zap.String("request_id", middleware.RequestIDFromContext(c.Request.Context())),
		)
		h.metrics.Leads.WithLabelValues(metrics.LeadInvalid).Inc()
		c.JSON(http.StatusBadRequest, models.Result{OK: false, Error: "Invalid request body"})
		return
	}

	lead, err := submission.Normalize(h.schema)
	if err != nil {
		h.metrics.Leads.WithLabelValues(metrics.LeadRejected).Inc()
		c.JSON(http.StatusBadRequest, models.Result{OK: false, Error: err.Error()})
		return
	}

	h.metrics.Leads.WithLabelValues(metrics.LeadAccepted).Inc()
	h.submissionService.ProcessLandingSubmission(c.Request.Context(), lead, h.now())

	c.JSON(http.StatusOK, models.Result{OK: true})
}

// HandleAnalytics logs one event. It cannot fail from the caller's point of
// view: whatever part of the body decoded is logged.
func (h *Handlers) HandleAnalytics(c *gin.Context) {
	var event models.AnalyticsEvent

	if err := decodeJSON(c, &event); err != nil {
		h.logger.Debug("unreadable analytics body",
			zap.Error(err),
			zap.String("request_id", middleware.RequestIDFromContext(c.Request.Context())),
		)
	}

	h.analyticsService.RecordEvent(c.Request.Context(), event, h.now())
	c.JSON(http.StatusOK, models.Result{OK: true})
}

// decodeJSON reads a single JSON document. An empty body decodes to the zero
// value so clients that omit the body entirely are treated like {}.
func decodeJSON(c *gin.Context, v any) error {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return errors.New("field " + typeErr.Field + " has the wrong type")
		}
		return err
	}
	return nil
}
