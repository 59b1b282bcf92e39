package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent keys
// keep the value already in Config.
type JsonConfig struct {
	Transport      *string         `json:"transport"`
	GRPCAddr       *string         `json:"grpc_addr"`
	HTTPAddr       *string         `json:"http_addr"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
}

func parseJson(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.Transport != nil {
		cfg.Transport = *jc.Transport
	}
	if jc.GRPCAddr != nil {
		cfg.GRPCAddr = *jc.GRPCAddr
	}
	if jc.HTTPAddr != nil {
		cfg.HTTPAddr = *jc.HTTPAddr
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	return nil
}
