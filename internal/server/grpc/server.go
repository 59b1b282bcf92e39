// Package grpc is the RPC adapter of the glossary directory.
package grpc

import (
	"context"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/logging"
	pb "github.com/aka-Steam/REST-vs-RPC-benchmark/internal/proto"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/metrics"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/services"
)

type GRPCServer struct {
	address   string
	grace     time.Duration
	directory services.Directory
	logger    logging.Logger
	metrics   *metrics.Recorder
	health    *health.Server
}

// NewGRPCServer builds the RPC front-end. grace bounds how long a shutdown
// waits for in-flight calls before closing them.
func NewGRPCServer(a string, grace time.Duration, l logging.Logger, d services.Directory, m *metrics.Recorder) *GRPCServer {
	return &GRPCServer{
		address:   a,
		grace:     grace,
		directory: d,
		logger:    l.With("module", "grpc_server"),
		metrics:   m,
		health:    health.NewServer(),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.requestInterceptor))

	pb.RegisterGlossaryServiceServer(srv, s)
	healthpb.RegisterHealthServer(srv, s.health)
	s.health.SetServingStatus(pb.ServiceName, healthpb.HealthCheckResponse_SERVING)

	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping gRPC server...")
		s.health.Shutdown()
		s.stop(srv)
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	<-stopped
	return nil
}

func (s *GRPCServer) stop(srv *grpc.Server) {
	done := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(done)
	}()

	if s.grace <= 0 {
		<-done
		return
	}

	select {
	case <-done:
	case <-time.After(s.grace):
		s.logger.Warn(context.Background(), "grace period elapsed, closing open calls")
		srv.Stop()
	}
}
