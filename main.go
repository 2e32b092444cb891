package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/navarrastar/landing-backend/pkg/api"
	"github.com/navarrastar/landing-backend/pkg/clients/sendgrid"
	"github.com/navarrastar/landing-backend/pkg/clients/telegram"
	"github.com/navarrastar/landing-backend/pkg/config"
	"github.com/navarrastar/landing-backend/pkg/logging"
	"github.com/navarrastar/landing-backend/pkg/metrics"
	"github.com/navarrastar/landing-backend/pkg/middleware"
	"github.com/navarrastar/landing-backend/pkg/services"
	"github.com/navarrastar/landing-backend/pkg/site"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Error loading .env file: %v", err)
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	m := metrics.New()

	// Initialize notification sinks
	var sinks []services.Sink
	if cfg.Telegram.Enabled() {
		httpClient := &http.Client{Timeout: cfg.RelayTimeout}
		sinks = append(sinks, services.NewTelegramSink(
			telegram.NewClient(httpClient, cfg.Telegram.APIURL, cfg.Telegram.BotToken, cfg.Telegram.ChatID),
		))
	}
	if cfg.Email.Enabled() {
		sinks = append(sinks, services.NewEmailSink(
			sendgrid.NewClient(cfg.Email.SendGridAPIKey, cfg.Email.From, cfg.Email.To),
		))
	}
	sinkNames := make([]string, 0, len(sinks))
	for _, s := range sinks {
		sinkNames = append(sinkNames, s.Name())
	}
	if len(sinks) == 0 {
		logger.Warn("no notification sink configured, leads will only be logged")
	}

	// Initialize services
	submissionService := services.NewLandingSubmissionService(logger, m, cfg.RelayTimeout, sinks...)
	analyticsService := services.NewAnalyticsService(logger)

	assets, source, err := site.Assets(cfg.StaticDir)
	if err != nil {
		logger.Fatal("error opening static assets", zap.String("dir", cfg.StaticDir), zap.Error(err))
	}
	landing, err := site.New(assets, cfg.Schema())
	if err != nil {
		logger.Fatal("error loading landing page", zap.String("source", source), zap.Error(err))
	}

	gin.SetMode(cfg.GinMode)

	handlers := api.NewHandlers(cfg.Schema(), submissionService, analyticsService, m, logger)
	router := api.NewRouter(handlers, landing, m, logger)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           middleware.CORS(cfg.AllowedOrigins)(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("error during shutdown", zap.Error(err))
		}
	}()

	logger.Info("server starting",
		zap.String("addr", server.Addr),
		zap.String("schema", string(cfg.Schema())),
		zap.String("assets", source),
		zap.Strings("sinks", sinkNames),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("error starting server", zap.Error(err))
	}
	<-shutdownDone
	logger.Info("server stopped")
}
