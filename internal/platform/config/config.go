// Copyright (c) 2026 Itinera. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, Planner) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/taibuivan/itinera/internal/platform/constants"
)

// # Configuration Schema

// Config holds all runtime configuration for the Itinera API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL) holding the tour catalog
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`
	RunMigrations bool   `env:"RUN_MIGRATIONS" envDefault:"true"`

	// Key-Value Cache (Redis). Empty disables package caching.
	RedisURL string `env:"REDIS_URL"`

	// JWTPubKeyPath verifies admin tokens. Empty disables the admin routes.
	JWTPubKeyPath string `env:"JWT_PUBLIC_KEY_PATH"`

	// Cross-Origin Resource Sharing (comma separated origin suffixes)
	ExtraOrigins string `env:"EXTRA_ORIGINS"`

	// Planner tuning
	SearchTimeout   time.Duration `env:"PLANNER_SEARCH_TIMEOUT"`
	MaxCandidates   int           `env:"PLANNER_MAX_CANDIDATES"`
	PackageCacheTTL time.Duration `env:"PLANNER_CACHE_TTL"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Planner defaults come from constants so the CLI and server agree
	cfg := &Config{
		SearchTimeout:   constants.DefaultSearchTimeout,
		MaxCandidates:   constants.DefaultMaxCandidates,
		PackageCacheTTL: constants.DefaultPackageCacheTTL,
	}

	// Fields marked 'required' fail the parse when missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.SearchTimeout <= 0 {
		return fmt.Errorf("config: PLANNER_SEARCH_TIMEOUT must be positive, got %s", c.SearchTimeout)
	}
	if c.MaxCandidates < 0 {
		return fmt.Errorf("config: PLANNER_MAX_CANDIDATES must not be negative, got %d", c.MaxCandidates)
	}
	if c.PackageCacheTTL < 0 {
		return fmt.Errorf("config: PLANNER_CACHE_TTL must not be negative, got %s", c.PackageCacheTTL)
	}
	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigins returns the trimmed, non-empty entries of EXTRA_ORIGINS.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.ExtraOrigins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// CacheEnabled reports whether a Redis URL was configured.
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != ""
}

// AdminEnabled reports whether admin token verification is configured.
func (c *Config) AdminEnabled() bool {
	return c.JWTPubKeyPath != ""
}
