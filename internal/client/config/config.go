package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Supported transports.
const (
	TransportRPC  = "rpc"
	TransportHTTP = "http"
)

// Config holds runtime settings for glossaryctl.
//
// Fields:
//   - Transport: "rpc" or "http".
//   - GRPCAddr: host:port of the RPC endpoint.
//   - HTTPAddr: base URL of the HTTP endpoint.
//   - RequestTimeout: deadline of one call.
type Config struct {
	Transport      string        `validate:"oneof=rpc http"`
	GRPCAddr       string        `validate:"required"`
	HTTPAddr       string        `validate:"required,url"`
	RequestTimeout time.Duration `validate:"gt=0"`
}

// LoadDefaults points the client at a local server over RPC.
func (c *Config) LoadDefaults() {
	c.Transport = TransportRPC
	c.GRPCAddr = "127.0.0.1:50051"
	c.HTTPAddr = "http://127.0.0.1:8000"
	c.RequestTimeout = 30 * time.Second
}

// Addr is the address of the selected transport.
func (c *Config) Addr() string {
	if c.Transport == TransportHTTP {
		return c.HTTPAddr
	}
	return c.GRPCAddr
}

// SetAddr replaces the address of the selected transport.
func (c *Config) SetAddr(addr string) {
	if c.Transport == TransportHTTP {
		c.HTTPAddr = addr
		return
	}
	c.GRPCAddr = addr
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Load applies defaults and then the JSON file at path, if path is not
// empty. The result is not validated; flags may still change it.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if path == "" {
		return cfg, nil
	}
	if err := parseJson(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}
