package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Database
	DatabasePath string

	// Auth
	BcryptCost int

	// Identity cache
	IdentityCacheTTL time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		DatabasePath:     getEnv("DATABASE_PATH", "data/sqlite.db"),
		BcryptCost:       getEnvInt("BCRYPT_COST", 12),
		IdentityCacheTTL: time.Duration(getEnvInt("IDENTITY_CACHE_TTL_SECONDS", 300)) * time.Second,
	}

	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	return cfg, nil
}

// IsProduction controls the Secure flag on session cookies.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
