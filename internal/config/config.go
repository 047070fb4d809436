package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is read from environment variables only; there is no config
// file. OPENAI_API_KEY is deliberately not required: without it the AI
// analysis features are disabled at startup with a diagnostic, while
// the statistics and news features keep working.
type Config struct {
	OpenAIAPIKey  string        `env:"OPENAI_API_KEY"`
	OpenAIModel   string        `env:"OPENAI_MODEL" env-default:"gpt-4o-mini"`
	OpenF1BaseURL string        `env:"OPENF1_BASE_URL" env-default:"https://api.openf1.org/v1"`
	NewsBaseURL   string        `env:"NEWS_BASE_URL" env-default:"https://www.autosport.com"`
	CacheTTL      time.Duration `env:"CACHE_TTL" env-default:"1h"`
	LogLevel      string        `env:"LOG_LEVEL" env-default:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.OpenF1BaseURL == "" {
		return fmt.Errorf("OPENF1_BASE_URL must not be empty")
	}
	if c.NewsBaseURL == "" {
		return fmt.Errorf("NEWS_BASE_URL must not be empty")
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive, got %s", c.CacheTTL)
	}
	return nil
}

// SlogLevel maps the configured level name onto slog's levels,
// defaulting to Info for anything unrecognized.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
