package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("RATE_LIMIT_BURST", "")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 7*24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10, cfg.RateLimitBurst)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("TOKEN_TTL", "3600")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("AUDIT_QUEUE_SIZE", "not-a-number")
	t.Setenv("DEFAULT_TIMEZONE", "Europe/Lisbon")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 100, cfg.AuditQueueSize)
	assert.Equal(t, "Europe/Lisbon", cfg.DefaultTimezone)
}
