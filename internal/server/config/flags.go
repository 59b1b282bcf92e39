package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     gRPC bind address (e.g., ":50051")
//	-h string     HTTP bind address (e.g., ":8000")
//	-driver string  database driver: sqlite or pgx
//	-d string     database DSN
//	-busy duration  store lock wait ceiling (e.g., "20s")
//	-l string     log level
//	-f string     log format
//
// Only these flags are taken from args, see flagx.FilterArgs.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-h", "-driver", "-d", "-busy", "-l", "-f"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "gRPC address and port")
	fs.StringVar(&config.EndpointAddrHTTP, "h", config.EndpointAddrHTTP, "HTTP address and port")
	fs.StringVar(&config.DatabaseDriver, "driver", config.DatabaseDriver, "database driver (sqlite, pgx)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.DurationVar(&config.BusyTimeout, "busy", config.BusyTimeout, "store lock wait ceiling")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format (json, text, zap, zap-dev)")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
