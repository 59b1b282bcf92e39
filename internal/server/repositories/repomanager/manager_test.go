package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/config"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/repositories/terms"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/storage"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	m := NewSQLRepositoryManager(storage.SQLite{})

	if r := m.Terms(db); r == nil {
		t.Fatal("Terms() nil")
	}
	var _ terms.Repository = m.Terms(db)
	require.Equal(t, storage.SQLite{}, m.Dialect())
}

func TestRunMigrations_UsesDialectDir(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	var dirs []string
	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if len(opts) != 0 {
			return errors.New("unexpected opts")
		}
		dirs = append(dirs, dir)
		return nil
	}
	defer func() { gooseUpContext = orig }()

	require.NoError(t, NewSQLRepositoryManager(storage.SQLite{}).RunMigrations(context.Background(), db))
	require.NoError(t, NewSQLRepositoryManager(storage.Postgres{}).RunMigrations(context.Background(), db))
	require.Equal(t, []string{"sqlite", "postgres"}, dirs)
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	m := NewSQLRepositoryManager(storage.SQLite{})
	if err := m.RunMigrations(context.Background(), db); err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestRunMigrations_SQLiteCreatesTermsTable(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DatabaseDSN = filepath.Join(t.TempDir(), "glossary.db")
	cfg.OperationTimeout = 5 * time.Second

	db, dialect, err := storage.Open(context.Background(), cfg)
	require.NoError(t, err)
	defer db.Close()

	m := NewSQLRepositoryManager(dialect)
	require.NoError(t, m.RunMigrations(context.Background(), db))
	// Second run is a no-op.
	require.NoError(t, m.RunMigrations(context.Background(), db))

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'index' AND name = 'ix_terms_keyword'`).Scan(&name)
	require.NoError(t, err)

	all, err := m.Terms(db).List(context.Background())
	require.NoError(t, err)
	require.Empty(t, all)
}
