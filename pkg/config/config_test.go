package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navarrastar/landing-backend/pkg/models"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "GIN_MODE", "STATIC_DIR", "LEAD_SCHEMA", "ALLOWED_ORIGINS", "SHUTDOWN_TIMEOUT",
		"LOG_LEVEL", "LOG_FORMAT", "RELAY_TIMEOUT",
		"TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID", "TELEGRAM_API_URL",
		"SENDGRID_API_KEY", "LEAD_EMAIL_FROM", "LEAD_EMAIL_TO",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, "public", cfg.StaticDir)
	assert.Equal(t, models.SchemaPhone, cfg.Schema())
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.RelayTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "https://api.telegram.org", cfg.Telegram.APIURL)
	assert.False(t, cfg.Telegram.Enabled())
	assert.False(t, cfg.Email.Enabled())
}

func TestLoadConfigOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", ":8081")
	t.Setenv("LEAD_SCHEMA", "email")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("RELAY_TIMEOUT", "3s")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "-100")
	t.Setenv("SENDGRID_API_KEY", "SG.key")
	t.Setenv("LEAD_EMAIL_FROM", "site@example.com")
	t.Setenv("LEAD_EMAIL_TO", "sales@example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.Addr())
	assert.Equal(t, models.SchemaEmail, cfg.Schema())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 3*time.Second, cfg.RelayTimeout)
	assert.True(t, cfg.Telegram.Enabled())
	assert.True(t, cfg.Email.Enabled())
}

func TestTelegramNeedsBothValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.False(t, cfg.Telegram.Enabled())
}

func TestLoadConfigRejectsUnknownSchema(t *testing.T) {
	clearEnv(t)
	t.Setenv("LEAD_SCHEMA", "fax")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigRejectsBadDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("RELAY_TIMEOUT", "soon")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigGinMode(t *testing.T) {
	clearEnv(t)
	t.Setenv("GIN_MODE", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.GinMode)

	t.Setenv("GIN_MODE", "production")
	_, err = LoadConfig()
	assert.ErrorContains(t, err, "GIN_MODE")
}
