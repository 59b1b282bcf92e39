// Package repomanager provides the RepositoryManager for the configured SQL
// engine, wiring together repository constructors and database migrations
// (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/dbx"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/migrations"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/repositories/terms"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/storage"
)

// SQLRepositoryManager vends repositories speaking one dialect and exposes
// a schema migration hook.
type SQLRepositoryManager struct {
	dialect storage.Dialect
}

// Terms returns a terms.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Terms(db dbx.DBTX) terms.Repository {
	return terms.NewSQLRepository(db, m.dialect)
}

// Dialect reports the engine the manager was built for.
func (m *SQLRepositoryManager) Dialect() storage.Dialect {
	return m.dialect
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations of the manager's dialect.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(m.dialect.GooseDialect()); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, migrations.Dir(m.dialect.GooseDialect())); err != nil {
		return err
	}
	return nil
}

// NewSQLRepositoryManager constructs a RepositoryManager for dialect.
func NewSQLRepositoryManager(dialect storage.Dialect) RepositoryManager {
	return &SQLRepositoryManager{dialect: dialect}
}
