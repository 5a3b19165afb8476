// Package config centralises configuration parsing for the workout service.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"
)

// ID strategies accepted by Config.IDStrategy.
const (
	IDStrategyUUID     = "uuid"
	IDStrategySequence = "sequence"
)

// FileEnv names the environment variable holding an optional TOML config file path.
const FileEnv = "WORKOUTS_CONFIG"

// Config captures runtime configuration values for the workout service.
type Config struct {
	HTTPAddress       string        `toml:"http_address"`
	WeeklyGoalMinutes int           `toml:"weekly_goal_minutes"`
	SeedSampleData    bool          `toml:"seed_sample_data"`
	SeedFile          string        `toml:"seed_file"` // Optional TOML file replacing the built-in sample workouts.
	IDStrategy        string        `toml:"id_strategy"`
	LogLevel          string        `toml:"log_level"`
	LogFormatJSON     bool          `toml:"log_format_json"`
	LogFile           string        `toml:"log_file"`
	CORSAllowedOrigin string        `toml:"cors_allowed_origin"`
	ShutdownTimeout   time.Duration `toml:"shutdown_timeout"`
}

// Default returns the configuration used for local dev.
func Default() Config {
	return Config{
		HTTPAddress:       ":8080",
		WeeklyGoalMinutes: 300,
		SeedSampleData:    true,
		IDStrategy:        IDStrategyUUID,
		LogLevel:          "info",
		CORSAllowedOrigin: "http://localhost:5173",
		ShutdownTimeout:   15 * time.Second,
	}
}

// Load starts from Default, applies the TOML file named by WORKOUTS_CONFIG if set,
// then environment variables, and validates the result.
func Load() (Config, error) {
	cfg := Default()

	if path := getEnv(FileEnv, ""); path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config file %s: %w", path, err)
		}
	}

	cfg.HTTPAddress = getEnv("HTTP_ADDRESS", cfg.HTTPAddress)
	goal, err := getIntEnv("WEEKLY_GOAL_MINUTES", cfg.WeeklyGoalMinutes)
	if err != nil {
		return Config{}, err
	}
	cfg.WeeklyGoalMinutes = goal
	cfg.SeedSampleData = getBoolEnv("SEED_SAMPLE_DATA", cfg.SeedSampleData)
	cfg.SeedFile = getEnv("SEED_FILE", cfg.SeedFile)
	cfg.IDStrategy = strings.ToLower(getEnv("ID_STRATEGY", cfg.IDStrategy))
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormatJSON = getBoolEnv("LOG_FORMAT_JSON", cfg.LogFormatJSON)
	cfg.LogFile = getEnv("LOG_FILE", cfg.LogFile)
	cfg.CORSAllowedOrigin = getEnv("CORS_ALLOWED_ORIGIN", cfg.CORSAllowedOrigin)
	cfg.ShutdownTimeout = getDurationEnv("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the service cannot run with.
func (c Config) Validate() error {
	var err error
	if c.WeeklyGoalMinutes <= 0 {
		err = multierr.Append(err, fmt.Errorf("weekly goal must be greater than zero, got %d", c.WeeklyGoalMinutes))
	}
	if c.IDStrategy != IDStrategyUUID && c.IDStrategy != IDStrategySequence {
		err = multierr.Append(err, fmt.Errorf("unknown id strategy %q", c.IDStrategy))
	}
	if strings.TrimSpace(c.HTTPAddress) == "" {
		err = multierr.Append(err, errors.New("http address is required"))
	}
	if c.ShutdownTimeout <= 0 {
		err = multierr.Append(err, errors.New("shutdown timeout must be positive"))
	}
	return err
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getIntEnv(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return parsed, nil
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
