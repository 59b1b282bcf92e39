package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/flagx"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/timex"
)

// FileConfig is the on-disk shape of the configuration. Pointer fields tell
// "absent" apart from a zero value so that a partial file only overrides
// what it names. Durations accept "20s" or integer nanoseconds.
type FileConfig struct {
	EndpointAddrGRPC  *string         `json:"endpoint_addr_grpc" yaml:"endpoint_addr_grpc" toml:"endpoint_addr_grpc"`
	EndpointAddrHTTP  *string         `json:"endpoint_addr_http" yaml:"endpoint_addr_http" toml:"endpoint_addr_http"`
	DatabaseDriver    *string         `json:"database_driver" yaml:"database_driver" toml:"database_driver"`
	DatabaseDSN       *string         `json:"database_dsn" yaml:"database_dsn" toml:"database_dsn"`
	BusyTimeout       *timex.Duration `json:"busy_timeout" yaml:"busy_timeout" toml:"busy_timeout"`
	OperationTimeout  *timex.Duration `json:"operation_timeout" yaml:"operation_timeout" toml:"operation_timeout"`
	MaxOpenConns      *int            `json:"max_open_conns" yaml:"max_open_conns" toml:"max_open_conns"`
	MigrationsEnabled *bool           `json:"migrations_enabled" yaml:"migrations_enabled" toml:"migrations_enabled"`
	LogLevel          *string         `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFormat         *string         `json:"log_format" yaml:"log_format" toml:"log_format"`
	ShutdownTimeout   *timex.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" toml:"shutdown_timeout"`
}

// parseFile overlays the file named by -c/-config, if any. The format is
// chosen by extension: .json, .yaml/.yml or .toml.
func parseFile(config *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	fc := &FileConfig{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, fc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, fc)
	case ".toml":
		err = toml.Unmarshal(data, fc)
	default:
		return fmt.Errorf("unsupported config file extension %q", ext)
	}
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	fc.apply(config)
	return nil
}

func (fc *FileConfig) apply(c *Config) {
	setString(&c.EndpointAddrGRPC, fc.EndpointAddrGRPC)
	setString(&c.EndpointAddrHTTP, fc.EndpointAddrHTTP)
	setString(&c.DatabaseDriver, fc.DatabaseDriver)
	setString(&c.DatabaseDSN, fc.DatabaseDSN)
	setString(&c.LogLevel, fc.LogLevel)
	setString(&c.LogFormat, fc.LogFormat)
	if fc.BusyTimeout != nil {
		c.BusyTimeout = fc.BusyTimeout.Duration
	}
	if fc.OperationTimeout != nil {
		c.OperationTimeout = fc.OperationTimeout.Duration
	}
	if fc.ShutdownTimeout != nil {
		c.ShutdownTimeout = fc.ShutdownTimeout.Duration
	}
	if fc.MaxOpenConns != nil {
		c.MaxOpenConns = *fc.MaxOpenConns
	}
	if fc.MigrationsEnabled != nil {
		c.MigrationsEnabled = *fc.MigrationsEnabled
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
