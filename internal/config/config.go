package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"pug-tracker/internal/constants"
)

type Config struct {
	APIBaseURL string
	APIKey     string
	LogLevel   string
	RateLimit  int
	RateWindow time.Duration
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		APIBaseURL: getEnv("API_BASE_URL", ""),
		APIKey:     getEnv("API_KEY", ""),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		RateLimit:  getEnvInt("RATE_LIMIT", constants.DefaultRateLimit),
		RateWindow: constants.DefaultRateWindow,
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL is required")
	}

	logger.Info().
		Str("api_base_url", cfg.APIBaseURL).
		Str("log_level", cfg.LogLevel).
		Int("rate_limit", cfg.RateLimit).
		Dur("rate_window", cfg.RateWindow).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
