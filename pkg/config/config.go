package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"

	"github.com/navarrastar/landing-backend/pkg/models"
)

// Config holds all application configuration values
type Config struct {
	Port            string        `env:"PORT" envDefault:"3000"`
	GinMode         string        `env:"GIN_MODE" envDefault:"release"`
	StaticDir       string        `env:"STATIC_DIR" envDefault:"public"`
	LeadSchema      string        `env:"LEAD_SCHEMA" envDefault:"phone"`
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	Telegram TelegramConfig
	Email    EmailConfig

	// Upper bound for a single call to a notification sink
	RelayTimeout time.Duration `env:"RELAY_TIMEOUT" envDefault:"10s"`
}

// TelegramConfig holds the Bot API credentials used to relay leads
type TelegramConfig struct {
	BotToken string `env:"TELEGRAM_BOT_TOKEN"`
	ChatID   string `env:"TELEGRAM_CHAT_ID"`
	APIURL   string `env:"TELEGRAM_API_URL" envDefault:"https://api.telegram.org"`
}

// Enabled reports whether both the token and the target chat are set
func (t TelegramConfig) Enabled() bool {
	return strings.TrimSpace(t.BotToken) != "" && strings.TrimSpace(t.ChatID) != ""
}

// EmailConfig holds the SendGrid settings for the operator inbox
type EmailConfig struct {
	SendGridAPIKey string `env:"SENDGRID_API_KEY"`
	From           string `env:"LEAD_EMAIL_FROM"`
	To             string `env:"LEAD_EMAIL_TO"`
}

// Enabled reports whether every field needed to send an email is set
func (e EmailConfig) Enabled() bool {
	return strings.TrimSpace(e.SendGridAPIKey) != "" &&
		strings.TrimSpace(e.From) != "" &&
		strings.TrimSpace(e.To) != ""
}

// LoadConfig reads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}

	if _, err := models.ParseLeadSchema(cfg.LeadSchema); err != nil {
		return nil, err
	}
	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return nil, fmt.Errorf("GIN_MODE must be one of %s, %s or %s, got %q", gin.DebugMode, gin.ReleaseMode, gin.TestMode, cfg.GinMode)
	}
	if cfg.RelayTimeout <= 0 {
		return nil, fmt.Errorf("RELAY_TIMEOUT must be positive, got %s", cfg.RelayTimeout)
	}

	return cfg, nil
}

// Schema returns the lead schema selected for this deployment.
// LoadConfig has already rejected unknown values.
func (c *Config) Schema() models.LeadSchema {
	schema, _ := models.ParseLeadSchema(c.LeadSchema)
	return schema
}

// Addr returns the listen address derived from Port
func (c *Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
