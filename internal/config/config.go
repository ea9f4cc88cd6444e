package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env       string `env:"APP_ENV" env-default:"local"`
	Port      string `env:"PORT" env-default:"8080"`
	// GinMode defaults to release in production and debug elsewhere.
	GinMode   string `env:"GIN_MODE"`
	Database  DatabaseConfig
	Predictor PredictorConfig
	Scheduler SchedulerConfig
	HTTP      HTTPConfig
}

type DatabaseConfig struct {
	URL string `env:"DATABASE_URL" env-default:""`
}

type PredictorConfig struct {
	// Kind selects the implementation: "linear" or "http".
	Kind      string        `env:"PREDICTOR_KIND" env-default:"linear"`
	ModelPath string        `env:"PREDICTOR_MODEL_PATH" env-default:""`
	Endpoint  string        `env:"PREDICTOR_ENDPOINT" env-default:""`
	APIKey    string        `env:"PREDICTOR_API_KEY" env-default:""`
	Timeout   time.Duration `env:"PREDICTOR_TIMEOUT" env-default:"25s"`
}

type SchedulerConfig struct {
	ScanLimit          int    `env:"SCHEDULE_SCAN_LIMIT" env-default:"100"`
	DefaultQualityTier string `env:"DEFAULT_QUALITY_TIER" env-default:"Medium"`
}

type HTTPConfig struct {
	RateLimitPerSec float64       `env:"RATE_LIMIT_PER_SEC" env-default:"5"`
	RateLimitBurst  int           `env:"RATE_LIMIT_BURST" env-default:"10"`
	CacheTTL        time.Duration `env:"CACHE_TTL" env-default:"30s"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
}

func Load() (*Config, error) {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	cfg.Predictor.Kind = strings.ToLower(strings.TrimSpace(cfg.Predictor.Kind))
	switch cfg.Predictor.Kind {
	case "", "linear":
		cfg.Predictor.Kind = "linear"
	case "http":
		if cfg.Predictor.Endpoint == "" {
			return nil, fmt.Errorf("PREDICTOR_ENDPOINT is required when PREDICTOR_KIND=http")
		}
	default:
		return nil, fmt.Errorf("unknown PREDICTOR_KIND %q", cfg.Predictor.Kind)
	}

	if cfg.GinMode == "" {
		cfg.GinMode = "debug"
		if cfg.IsProduction() {
			cfg.GinMode = "release"
		}
	}

	switch cfg.Scheduler.DefaultQualityTier {
	case "High", "Medium", "Low":
	default:
		return nil, fmt.Errorf("DEFAULT_QUALITY_TIER must be High, Medium or Low, got %q", cfg.Scheduler.DefaultQualityTier)
	}

	for i := range cfg.HTTP.AllowedOrigins {
		cfg.HTTP.AllowedOrigins[i] = strings.TrimSpace(cfg.HTTP.AllowedOrigins[i])
	}

	return &cfg, nil
}

// IsProduction reports whether the service runs in a deployed environment.
func (c *Config) IsProduction() bool {
	return c.Env == "prod" || c.Env == "dev"
}
