// Package config provides configuration loading and validation from environment variables.
package config

import (
	"fmt"
	"os"
)

// Config holds all application configuration.
type Config struct {
	LogLevel          string // debug, info, warn, error
	ListenAddr        string // Server listen address (e.g., ":8080")
	MetricsListenAddr string // Metrics listener address (e.g., "localhost:9090")
	DatabasePath      string // SQLite database path

	// JWTSecret signs session tokens. Absence is a deployment-configuration
	// error surfaced at startup, never handled per-request.
	JWTSecret string

	// InitialPasswordHash seeds the single admin credential on first start
	// (generate with cmd/hashgen). Ignored once a credential row exists.
	InitialPasswordHash string

	// Blob storage settings for the upload relay.
	StorageEndpoint  string // Base URL of the storage API (empty = provider default)
	StorageZone      string // Storage zone name uploads are written under
	StorageAccessKey string // Write key for the storage zone
	CDNBaseURL       string // Public base URL returned to clients for uploaded files
}

// Load parses configuration from environment variables.
// Optional fields have sensible defaults for ease of deployment.
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel:            os.Getenv("LOG_LEVEL"),
		ListenAddr:          os.Getenv("LISTEN_ADDR"),
		MetricsListenAddr:   os.Getenv("METRICS_LISTEN_ADDR"),
		DatabasePath:        os.Getenv("DATABASE_PATH"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		InitialPasswordHash: os.Getenv("INITIAL_PASSWORD_HASH"),
		StorageEndpoint:     os.Getenv("STORAGE_ENDPOINT"),
		StorageZone:         os.Getenv("STORAGE_ZONE"),
		StorageAccessKey:    os.Getenv("STORAGE_ACCESS_KEY"),
		CDNBaseURL:          os.Getenv("CDN_BASE_URL"),
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}

	if cfg.MetricsListenAddr == "" {
		cfg.MetricsListenAddr = "localhost:9090"
	}

	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "/data/elbustan.db"
	}

	return cfg, nil
}

// Validate checks all configuration constraints.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is required")
	}
	if c.StorageZone == "" {
		return fmt.Errorf("STORAGE_ZONE environment variable is required")
	}
	if c.StorageAccessKey == "" {
		return fmt.Errorf("STORAGE_ACCESS_KEY environment variable is required")
	}
	if c.CDNBaseURL == "" {
		return fmt.Errorf("CDN_BASE_URL environment variable is required")
	}
	return nil
}
