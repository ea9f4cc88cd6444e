package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, "linear", cfg.Predictor.Kind)
	assert.Equal(t, 25*time.Second, cfg.Predictor.Timeout)
	assert.Equal(t, 100, cfg.Scheduler.ScanLimit)
	assert.Equal(t, "Medium", cfg.Scheduler.DefaultQualityTier)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "sqlite:/tmp/assistea.db")
	t.Setenv("PREDICTOR_KIND", "HTTP")
	t.Setenv("PREDICTOR_ENDPOINT", "http://predictor:8000")
	t.Setenv("PREDICTOR_TIMEOUT", "5s")
	t.Setenv("SCHEDULE_SCAN_LIMIT", "250")
	t.Setenv("DEFAULT_QUALITY_TIER", "High")
	t.Setenv("CACHE_TTL", "0s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "sqlite:/tmp/assistea.db", cfg.Database.URL)
	assert.Equal(t, "http", cfg.Predictor.Kind)
	assert.Equal(t, "http://predictor:8000", cfg.Predictor.Endpoint)
	assert.Equal(t, 5*time.Second, cfg.Predictor.Timeout)
	assert.Equal(t, 250, cfg.Scheduler.ScanLimit)
	assert.Equal(t, "High", cfg.Scheduler.DefaultQualityTier)
	assert.Equal(t, time.Duration(0), cfg.HTTP.CacheTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
}

func TestLoad_HTTPPredictorNeedsEndpoint(t *testing.T) {
	t.Setenv("PREDICTOR_KIND", "http")
	t.Setenv("PREDICTOR_ENDPOINT", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_UnknownPredictor(t *testing.T) {
	t.Setenv("PREDICTOR_KIND", "neural")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidDefaultQualityTier(t *testing.T) {
	for _, tier := range []string{"medium", "Premium"} {
		t.Setenv("DEFAULT_QUALITY_TIER", tier)

		_, err := Load()
		assert.Error(t, err, tier)
	}
}

func TestConfig_IsProduction(t *testing.T) {
	assert.False(t, (&Config{Env: "local"}).IsProduction())
	assert.True(t, (&Config{Env: "dev"}).IsProduction())
	assert.True(t, (&Config{Env: "prod"}).IsProduction())
}
