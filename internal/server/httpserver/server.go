// Package httpserver is the JSON-over-HTTP adapter of the glossary directory.
package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/logging"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/metrics"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/services"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	http   *http.Server
	logger logging.Logger
	grace  time.Duration
}

// New builds the HTTP server (router, middlewares, route registration).
func New(addr string, grace time.Duration, l logging.Logger, d services.Directory, m *metrics.Recorder) *Server {
	logger := l.With("module", "http_server")

	s := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(logger, d, m),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	return &Server{http: s, logger: logger, grace: grace}
}

// NewRouter wires the middlewares and routes onto a chi router.
func NewRouter(l logging.Logger, d services.Directory, m *metrics.Recorder) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID) // x-request-id on each request
	r.Use(middleware.Recoverer) // never crash the process on panic
	r.Use(accessLog(l, m))

	h := &handlers{directory: d}

	r.Get("/health", health)
	if m != nil {
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	r.Route("/terms", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Get("/{keyword}", h.get)
		r.Put("/{keyword}", h.update)
		r.Delete("/{keyword}", h.delete)
	})

	return r
}

// Run serves until ctx is done, then shuts down within the grace period.
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, lis)
}

// Serve accepts connections on lis until ctx is done.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "HTTP server listening", "address", lis.Addr().String())
		errCh <- s.http.Serve(lis)
	}()

	select {
	case err := <-errCh:
		// http.ErrServerClosed is expected on graceful shutdown.
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	stopCtx, cancel := context.WithCancel(context.Background())
	if s.grace > 0 {
		stopCtx, cancel = context.WithTimeout(context.Background(), s.grace)
	}
	defer cancel()
	if err := s.Stop(stopCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop gracefully shuts down the server with the provided context deadline.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info(ctx, "HTTP server shutting down...")
	if err := s.http.Shutdown(ctx); err != nil {
		_ = s.http.Close()
		return err
	}
	return nil
}
