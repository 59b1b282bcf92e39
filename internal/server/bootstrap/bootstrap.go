// Package bootstrap brings the terms schema into existence before either
// transport accepts traffic. Strategies are tried in order; the first one
// that succeeds wins and is logged.
package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/logging"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/repositories/repomanager"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/storage"
)

// Strategy is one way of making the schema available.
type Strategy interface {
	Name() string
	Apply(ctx context.Context, db *sql.DB) error
}

// Migrations applies the versioned goose migrations.
type Migrations struct {
	Manager repomanager.RepositoryManager
}

func (Migrations) Name() string { return "migrations" }

func (s Migrations) Apply(ctx context.Context, db *sql.DB) error {
	return s.Manager.RunMigrations(ctx, db)
}

// Schema declares the table and unique index directly. Every statement is
// idempotent so it is safe on an already migrated store.
type Schema struct {
	Dialect storage.Dialect
}

func (Schema) Name() string { return "schema" }

func (s Schema) Apply(ctx context.Context, db *sql.DB) error {
	for _, stmt := range s.Dialect.Schema() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", s.Dialect.Classify(err))
		}
	}
	return nil
}

// Run tries each strategy until one succeeds. It returns the name of the
// winning strategy, or an error joining every failure when none did.
func Run(ctx context.Context, db *sql.DB, logger logging.Logger, strategies ...Strategy) (string, error) {
	var errs []error
	for _, s := range strategies {
		if err := s.Apply(ctx, db); err != nil {
			logger.Warn(ctx, "schema bootstrap strategy failed", "strategy", s.Name(), "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
			continue
		}
		logger.Info(ctx, "schema ready", "strategy", s.Name())
		return s.Name(), nil
	}
	if len(errs) == 0 {
		return "", errors.New("no schema bootstrap strategy configured")
	}
	return "", fmt.Errorf("schema bootstrap failed: %w", errors.Join(errs...))
}

// Default returns the strategies for a store: migrations first when enabled,
// then the direct schema.
func Default(manager repomanager.RepositoryManager, migrationsEnabled bool) []Strategy {
	var out []Strategy
	if migrationsEnabled {
		out = append(out, Migrations{Manager: manager})
	}
	return append(out, Schema{Dialect: manager.Dialect()})
}
