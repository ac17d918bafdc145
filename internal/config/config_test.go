package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-test-secret-test-secret!")

	cfg, err := LoadConfig()

	assert.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 20, cfg.RateLimitRPS)
	assert.True(t, cfg.IsDevelopment())
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()

	assert.Error(t, err)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-test-secret-test-secret!")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("ACCESS_TOKEN_TTL", "30m")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := LoadConfig()

	assert.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
}

func TestValidateRejectsShortSecret(t *testing.T) {
	cfg := &Config{
		HTTPPort:     8080,
		LogLevel:     "debug",
		LogFormat:    "text",
		JWTSecret:    "short",
		RateLimitRPS: 20,
	}

	assert.Error(t, cfg.Validate())
}
