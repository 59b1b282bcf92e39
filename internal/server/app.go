// Package server initializes and runs the glossary server: it opens the
// entry store, bootstraps its schema, and serves the directory over gRPC and
// HTTP until a shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/logging"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/bootstrap"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/config"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/httpserver"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/metrics"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/repositories/repomanager"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/services"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/storage"

	gs "github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/grpc"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	db        *sql.DB
	directory services.Directory
	metrics   *metrics.Recorder
}

// NewApp opens the store and makes sure its schema exists. Nothing is
// served until Run.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, dialect, err := storage.Open(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m := repomanager.NewSQLRepositoryManager(dialect)

	strategy, err := bootstrap.Run(ctx, db, logger.With("module", "bootstrap"), bootstrap.Default(m, c.MigrationsEnabled)...)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	logger.Info(ctx, "store ready", "driver", dialect.Name(), "bootstrap", strategy)

	ts := services.NewTermService(db, m, c)

	return &App{config: c, logger: logger, db: db, directory: ts, metrics: metrics.New()}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves both transports until ctx is cancelled, a signal arrives or
// one of the servers fails; the other one is then stopped too.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	grpcServer := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.config.ShutdownTimeout, app.logger, app.directory, app.metrics)
	httpServer := httpserver.New(app.config.EndpointAddrHTTP, app.config.ShutdownTimeout, app.logger, app.directory, app.metrics)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := grpcServer.Run(ctx); err != nil {
			return fmt.Errorf("grpc server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := httpServer.Run(ctx); err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	err := g.Wait()
	if cerr := app.db.Close(); cerr != nil {
		app.logger.Error(context.Background(), "closing store", "error", cerr)
	}
	app.logger.Info(context.Background(), "App stopped")

	return err
}
