package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds the application configuration.
type Config struct {
	DataPath     string `env:"COUNTRY_DATA_PATH"`
	LogFile      string `env:"LOG_FILE" envDefault:"worldle.log"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	Seed         uint64 `env:"GAME_SEED"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
}

// HintsEnabled reports whether a Gemini key was configured.
func (c *Config) HintsEnabled() bool {
	return c.GeminiAPIKey != ""
}

// LoadConfig loads the configuration from environment variables, reading a
// .env file first when one exists.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return &cfg, nil
}
