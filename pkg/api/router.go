package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/navarrastar/landing-backend/pkg/metrics"
	"github.com/navarrastar/landing-backend/pkg/middleware"
	"github.com/navarrastar/landing-backend/pkg/site"
)

// NewRouter registers every route explicitly. Requests that match none of
// them fall through to the site's no-route branch, so adding a route here can
// never be shadowed by the fallback.
func NewRouter(handlers *Handlers, s *site.Site, m *metrics.Metrics, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = false

	router.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Metrics(m),
		middleware.Recovery(logger),
	)

	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(m.Handler()))

	apiGroup := router.Group("/api")
	apiGroup.POST("/lead", handlers.HandleLead)
	apiGroup.POST("/analytics", handlers.HandleAnalytics)

	router.NoRoute(s.NoRoute)

	return router
}
