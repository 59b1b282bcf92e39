package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// EnvPrefix prefixes every environment variable the server reads.
const EnvPrefix = "APP_"

// parseEnv overlays APP_* variables. APP_DATABASE_URL is accepted as an
// alias of APP_DATABASE_DSN; a "sqlite:///path" or "postgres://" URL also
// selects the driver.
func parseEnv(c *Config, lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	if v, ok := get("ENDPOINT_ADDR_GRPC"); ok {
		c.EndpointAddrGRPC = v
	}
	if v, ok := get("ENDPOINT_ADDR_HTTP"); ok {
		c.EndpointAddrHTTP = v
	}
	if v, ok := get("DATABASE_DRIVER"); ok {
		c.DatabaseDriver = v
	}
	if v, ok := get("DATABASE_URL"); ok {
		c.DatabaseDriver, c.DatabaseDSN = splitDatabaseURL(v, c.DatabaseDriver)
	}
	if v, ok := get("DATABASE_DSN"); ok {
		c.DatabaseDSN = v
	}
	if v, ok := get("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := get("LOG_FORMAT"); ok {
		c.LogFormat = v
	}

	durations := []struct {
		name string
		dst  *time.Duration
	}{
		{"BUSY_TIMEOUT", &c.BusyTimeout},
		{"OPERATION_TIMEOUT", &c.OperationTimeout},
		{"SHUTDOWN_TIMEOUT", &c.ShutdownTimeout},
	}
	for _, d := range durations {
		v, ok := get(d.name)
		if !ok {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, d.name, err)
		}
		*d.dst = parsed
	}

	if v, ok := get("MAX_OPEN_CONNS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sMAX_OPEN_CONNS: %w", EnvPrefix, err)
		}
		c.MaxOpenConns = n
	}
	if v, ok := get("MIGRATIONS_ENABLED"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sMIGRATIONS_ENABLED: %w", EnvPrefix, err)
		}
		c.MigrationsEnabled = b
	}
	return nil
}

func splitDatabaseURL(url, driver string) (string, string) {
	switch {
	case strings.HasPrefix(url, "sqlite:///"):
		return DriverSQLite, strings.TrimPrefix(url, "sqlite:///")
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return DriverPostgres, url
	default:
		return driver, url
	}
}
