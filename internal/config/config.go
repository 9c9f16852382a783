// Package config handles application configuration from environment variables
package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

// Browser platforms
const (
	PlatformFirefox  = "firefox"
	PlatformChromium = "chromium"
)

// bridgeHost keeps the bridge reachable from the local browser only
const bridgeHost = "127.0.0.1"

// Config represents the application configuration
type Config struct {
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	DatabasePath    string        `env:"DATABASE_PATH" envDefault:"aria2-integration.db"`
	BridgePort      string        `env:"BRIDGE_PORT" envDefault:"8731"`
	BrowserPlatform string        `env:"BROWSER_PLATFORM" envDefault:"firefox"`
	BadgeInterval   time.Duration `env:"BADGE_INTERVAL" envDefault:"5s"`
	InflightTTL     time.Duration `env:"INFLIGHT_TTL" envDefault:"2m"`
	RPCTimeout      time.Duration `env:"RPC_TIMEOUT" envDefault:"0s"`
	FetchTimeout    time.Duration `env:"FETCH_TIMEOUT" envDefault:"0s"`
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	validLogLevels := []string{"debug", "info", "warn", "error"}
	level := strings.ToLower(c.LogLevel)
	if !lo.Contains(validLogLevels, level) {
		return fmt.Errorf("invalid log level %q, must be one of: %v", c.LogLevel, validLogLevels)
	}
	c.LogLevel = level

	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH cannot be empty")
	}

	port, err := strconv.Atoi(c.BridgePort)
	if err != nil || port < 0 || port > 65535 {
		return fmt.Errorf("invalid BRIDGE_PORT %q", c.BridgePort)
	}

	validPlatforms := []string{PlatformFirefox, PlatformChromium}
	platform := strings.ToLower(c.BrowserPlatform)
	if !lo.Contains(validPlatforms, platform) {
		return fmt.Errorf("invalid browser platform %q, must be one of: %v", c.BrowserPlatform, validPlatforms)
	}
	c.BrowserPlatform = platform

	if c.BadgeInterval <= 0 {
		return fmt.Errorf("BADGE_INTERVAL must be positive, got: %s", c.BadgeInterval)
	}

	if c.InflightTTL < 0 || c.RPCTimeout < 0 || c.FetchTimeout < 0 {
		return fmt.Errorf("timeouts cannot be negative")
	}

	return nil
}

// BridgeAddr returns the listen address of the bridge
func (c *Config) BridgeAddr() string {
	return net.JoinHostPort(bridgeHost, c.BridgePort)
}

// SynchronousFilename reports whether new downloads carry their final name
// on the configured browser
func (c *Config) SynchronousFilename() bool {
	return c.BrowserPlatform == PlatformFirefox
}
