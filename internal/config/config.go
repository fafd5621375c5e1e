package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fadedpez/solitaire/internal/logging"
	"github.com/fadedpez/solitaire/internal/types"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Deck source
	DeckFile string // Path to a deck file; empty means a random deck
	Seed     int64  // Seed for the random deck
	HasSeed  bool   // Whether Seed was set explicitly

	// Output
	LogLevel logging.Level
	ShowDeck bool // Print the initial deck alongside results

	// Environment
	Environment string // "development" or "production"
}

// Load reads the configuration from an optional .env file and the environment
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile reads the configuration from the given .env file, if it exists,
// and the environment. Variables already set in the environment win.
func LoadFile(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, types.WrapError(types.ErrConfigError, "error loading "+envFile, err)
		}
	}

	cfg := &Config{
		DeckFile:    os.Getenv("SOLITAIRE_DECK_FILE"),
		Environment: getEnvWithDefault("ENVIRONMENT", "development"),
	}

	level, err := logging.ParseLevel(getEnvWithDefault("SOLITAIRE_LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	if raw := os.Getenv("SOLITAIRE_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, types.WrapError(types.ErrConfigError, fmt.Sprintf("SOLITAIRE_SEED %q is not an integer", raw), err)
		}
		cfg.Seed = seed
		cfg.HasSeed = true
	}

	if raw := os.Getenv("SOLITAIRE_SHOW_DECK"); raw != "" {
		show, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, types.WrapError(types.ErrConfigError, fmt.Sprintf("SOLITAIRE_SHOW_DECK %q is not a boolean", raw), err)
		}
		cfg.ShowDeck = show
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks that the configuration is consistent
func (c *Config) validate() error {
	if c.DeckFile != "" && c.HasSeed {
		return types.NewCipherError(types.ErrConfigError, "SOLITAIRE_DECK_FILE and SOLITAIRE_SEED are mutually exclusive")
	}
	if c.Environment != "development" && c.Environment != "production" {
		return types.NewCipherError(types.ErrConfigError, fmt.Sprintf("ENVIRONMENT must be development or production, got %q", c.Environment))
	}
	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
