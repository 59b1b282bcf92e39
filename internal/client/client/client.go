package client

import (
	"context"
	"fmt"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/client/config"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/client/models"
)

// Directory is the glossary as seen from a client.
type Directory interface {
	List(ctx context.Context) ([]models.Term, error)
	Get(ctx context.Context, keyword string) (*models.Term, error)
	Create(ctx context.Context, keyword, description string) (*models.Term, error)
	Update(ctx context.Context, keyword string, patch models.Patch) (*models.Term, error)
	Delete(ctx context.Context, keyword string) error
	Close() error
}

// New connects to the endpoint of cfg.Transport.
func New(cfg *config.Config) (Directory, error) {
	switch cfg.Transport {
	case config.TransportRPC:
		return NewGRPCClient(cfg.GRPCAddr, cfg.RequestTimeout)
	case config.TransportHTTP:
		return NewHTTPClient(cfg.HTTPAddr, cfg.RequestTimeout), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransport, cfg.Transport)
	}
}
