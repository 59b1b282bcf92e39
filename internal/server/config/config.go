// Package config handles configuration for the glossary server, including
// defaults, a config file overlay (JSON, YAML or TOML), APP_* environment
// variables, command-line flags and validation.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
)

// Supported values of DatabaseDriver.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// Config holds runtime settings for the glossary server. It is built once at
// start-up and then only read.
//
// Fields:
//   - EndpointAddrGRPC / EndpointAddrHTTP: bind addresses of the two transports.
//   - DatabaseDriver: "sqlite" (modernc) or "pgx" (PostgreSQL).
//   - DatabaseDSN: file path or URI for sqlite, connection string for pgx.
//   - BusyTimeout: wait ceiling for store lock contention.
//   - OperationTimeout: upper bound on one directory operation.
//   - MaxOpenConns: connection pool size.
//   - MigrationsEnabled: try the versioned migration before the direct schema.
//   - LogLevel / LogFormat: see the logging package.
//   - ShutdownTimeout: grace period for in-flight requests on shutdown.
type Config struct {
	EndpointAddrGRPC  string        `validate:"required"`
	EndpointAddrHTTP  string        `validate:"required"`
	DatabaseDriver    string        `validate:"oneof=sqlite pgx"`
	DatabaseDSN       string        `validate:"required"`
	BusyTimeout       time.Duration `validate:"gt=0"`
	OperationTimeout  time.Duration `validate:"gtfield=BusyTimeout"`
	MaxOpenConns      int           `validate:"min=1"`
	MigrationsEnabled bool
	LogLevel          string        `validate:"oneof=debug info warn error"`
	LogFormat         string        `validate:"oneof=json text zap zap-dev"`
	ShutdownTimeout   time.Duration `validate:"gt=0"`
}

// LoadDefaults populates Config with development defaults: a local SQLite
// file and a 20 second lock wait.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.EndpointAddrHTTP = ":8000"
	c.DatabaseDriver = DriverSQLite
	c.DatabaseDSN = "glossary.db"
	c.BusyTimeout = 20 * time.Second
	c.OperationTimeout = 25 * time.Second
	c.MaxOpenConns = 10
	c.MigrationsEnabled = true
	c.LogLevel = "info"
	c.LogFormat = "json"
	c.ShutdownTimeout = 10 * time.Second
}

// Validate reports the first constraint the config breaks.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional config file, the environment and finally command-line
// flags, and validates the result.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

func load(args []string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, lookup); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
