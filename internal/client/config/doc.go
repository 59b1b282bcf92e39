// Package config loads runtime configuration for glossaryctl.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file given with --config.
//  3. Command-line flags, applied by the cli package, which override
//     earlier values.
//
// # JSON schema
//
// Timeouts use timex.Duration, so values can be either strings like "5s" or
// integer nanoseconds:
//
//	{
//	  "transport": "http",
//	  "grpc_addr": "127.0.0.1:50051",
//	  "http_addr": "http://127.0.0.1:8000",
//	  "request_timeout": "5s"
//	}
package config
