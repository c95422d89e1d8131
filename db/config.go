package db

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment variables overriding a loaded configuration.
const (
	EnvDriver = "SQLPART_DRIVER"
	EnvDSN    = "SQLPART_DSN"
)

// DefaultDriver is used if no driver is configured.
const DefaultDriver = "postgres"

// Config defines a database connection.
type Config struct {
	// Driver is a database/sql driver name: postgres or sqlite3.
	Driver string `yaml:"driver"`
	// DSN is a data source name passed to the driver.
	DSN string `yaml:"dsn"`
	// LogLevel is one of debug, info, warn, error. Defaults to info.
	LogLevel string `yaml:"log_level"`

	// Logger for database events. Optional, defaults to slog
	// writing text to stderr with LogLevel.
	Logger *slog.Logger `yaml:"-"`
}

// LoadConfig reads a YAML configuration file and applies
// environment overrides. An empty path only reads the environment.
//
//	driver: postgres
//	dsn: postgres://localhost/jobly?sslmode=disable
//	log_level: debug
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("db: read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("db: parse config %s: %w", path, err)
		}
	}
	if v := os.Getenv(EnvDriver); v != "" {
		cfg.Driver = v
	}
	if v := os.Getenv(EnvDSN); v != "" {
		cfg.DSN = v
	}
	if err := cfg.normalize(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	if c.Driver == "" {
		c.Driver = DefaultDriver
	}
	if c.DSN == "" {
		return fmt.Errorf("db: no DSN configured for %s", c.Driver)
	}
	if c.Logger == nil {
		level, err := parseLevel(c.LogLevel)
		if err != nil {
			return err
		}
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})
		c.Logger = slog.New(handler)
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("db: invalid log level %q", s)
	}
	return level, nil
}
