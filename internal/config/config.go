// Package config loads CLI settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ZaguanLabs/dialect"
)

// Config holds every setting the CLI reads from the environment.
type Config struct {
	Direction   dialect.Direction
	Tables      []string // extra table files, overlaid in order
	RedisURL    string   // empty selects the in-memory cache
	CacheTTL    int      // seconds, 0 = no expiration
	CachePrefix string
	Workers     int
	LogLevel    zerolog.Level
}

// Load reads envFile (ignored when it does not exist) and the environment.
// Variables already set in the environment win over the file.
func Load(envFile string, logger zerolog.Logger) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("config: reading %s: %w", envFile, err)
			}
			logger.Debug().Str("file", envFile).Msg("No .env file found, using environment variables")
		}
	}

	dir, err := dialect.ParseDirection(getEnv("DIALECT_DIRECTION", string(dialect.ToBritish)))
	if err != nil {
		return nil, fmt.Errorf("config: DIALECT_DIRECTION: %w", err)
	}

	level, err := zerolog.ParseLevel(strings.ToLower(getEnv("DIALECT_LOG_LEVEL", "info")))
	if err != nil {
		return nil, fmt.Errorf("config: DIALECT_LOG_LEVEL: %w", err)
	}

	cfg := &Config{
		Direction:   dir,
		Tables:      splitList(getEnv("DIALECT_TABLES", "")),
		RedisURL:    getEnv("DIALECT_REDIS_URL", ""),
		CacheTTL:    getEnvInt("DIALECT_CACHE_TTL", 3600),
		CachePrefix: getEnv("DIALECT_CACHE_PREFIX", "dialect:"),
		Workers:     getEnvInt("DIALECT_WORKERS", 4),
		LogLevel:    level,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks the values that parsing alone cannot.
func (c *Config) validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("config: DIALECT_WORKERS must be at least 1, got %d", c.Workers)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("config: DIALECT_CACHE_TTL must not be negative, got %d", c.CacheTTL)
	}
	if c.RedisURL != "" {
		if _, err := redis.ParseURL(c.RedisURL); err != nil {
			return fmt.Errorf("config: DIALECT_REDIS_URL invalid (%q): %w", c.RedisURL, err)
		}
	}
	for _, p := range c.Tables {
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("config: DIALECT_TABLES: %w", err)
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// splitList splits a comma-separated list, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
