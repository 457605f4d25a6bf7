package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds the runtime settings read from the environment.
type Config struct {
	LogLevel    string
	OutputDir   string
	ReportDelay time.Duration // simulated wait before a report is produced
	Brand       string
}

// Load reads an optional .env file and the FENCE_* environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	delay, err := time.ParseDuration(getEnv("FENCE_REPORT_DELAY", "1500ms"))
	if err != nil {
		return nil, fmt.Errorf("FENCE_REPORT_DELAY: %w", err)
	}

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv("FENCE_LOG_LEVEL", "info")),
		OutputDir:   getEnv("FENCE_OUTPUT_DIR", "."),
		ReportDelay: delay,
		Brand:       getEnv("FENCE_BRAND", "Vahit Keskin Fence Calculator"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the log level, output dir, report delay and brand.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.LogLevel, validation.Required, validation.In("trace", "debug", "info", "warn", "error", "disabled")),
		validation.Field(&c.OutputDir, validation.Required),
		validation.Field(&c.ReportDelay, validation.Min(time.Duration(0))),
		validation.Field(&c.Brand, validation.Required, validation.Length(1, 80)),
	)
}

// Level returns the zerolog level for LogLevel, info when unrecognized.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
