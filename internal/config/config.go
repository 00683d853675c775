package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	LogLevel    string
	LogFormat   string
	Environment string

	// Field dimensions, set once at game start.
	FieldRows int
	FieldCols int

	// StartingMoney is the player's opening balance in dollars.
	StartingMoney float64

	// RNGSeed makes a session deterministic when non-zero; 0 means seed
	// from the clock.
	RNGSeed int64

	// SimDays is the number of in-game days the CLI session simulates.
	SimDays int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
	}

	var err error
	if cfg.FieldRows, err = getEnvInt("FIELD_ROWS", DefaultFieldRows); err != nil {
		return nil, err
	}
	if cfg.FieldCols, err = getEnvInt("FIELD_COLS", DefaultFieldCols); err != nil {
		return nil, err
	}
	if cfg.SimDays, err = getEnvInt("SIM_DAYS", DefaultSimDays); err != nil {
		return nil, err
	}

	seedStr := getEnv("RNG_SEED", "0")
	seed, err := strconv.ParseInt(seedStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RNG_SEED value: %w", err)
	}
	cfg.RNGSeed = seed

	moneyStr := getEnv("STARTING_MONEY", DefaultStartingMoney)
	money, err := strconv.ParseFloat(moneyStr, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid STARTING_MONEY value: %w", err)
	}
	cfg.StartingMoney = money

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.FieldRows < 1 || c.FieldCols < 1 {
		return fmt.Errorf("field dimensions must be positive, got %dx%d", c.FieldRows, c.FieldCols)
	}
	if c.SimDays < 0 {
		return fmt.Errorf("SIM_DAYS must not be negative, got %d", c.SimDays)
	}
	if c.StartingMoney < 0 {
		return fmt.Errorf("STARTING_MONEY must not be negative, got %v", c.StartingMoney)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return parsed, nil
}
