// Package storage opens the Entry Store and translates driver faults into
// the directory outcome taxonomy. Two engines are supported: SQLite through
// modernc.org/sqlite and PostgreSQL through pgx.
package storage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/config"
)

// Dialect captures what differs between the supported SQL engines.
type Dialect interface {
	// Name is the database/sql driver name.
	Name() string
	// GooseDialect is the dialect name understood by goose.
	GooseDialect() string
	// Rebind rewrites "?" placeholders into the engine's native form.
	Rebind(query string) string
	// Classify wraps err with the matching common sentinel, leaving
	// unrecognised errors untouched.
	Classify(err error) error
	// Schema declares the terms table and its unique keyword index idempotently.
	Schema() []string
}

// DialectFor returns the Dialect of a configured driver.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case config.DriverSQLite:
		return SQLite{}, nil
	case config.DriverPostgres:
		return Postgres{}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// SQLite is the modernc.org/sqlite dialect.
type SQLite struct{}

func (SQLite) Name() string               { return "sqlite" }
func (SQLite) GooseDialect() string       { return "sqlite3" }
func (SQLite) Rebind(query string) string { return query }
func (SQLite) Classify(err error) error   { return classify(err, sqliteSentinel) }

func (SQLite) Schema() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS terms (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			keyword     VARCHAR(255) NOT NULL,
			description TEXT NOT NULL,
			created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS ix_terms_keyword ON terms (keyword)`,
	}
}

// Postgres is the pgx dialect.
type Postgres struct{}

func (Postgres) Name() string             { return "pgx" }
func (Postgres) GooseDialect() string     { return "postgres" }
func (Postgres) Classify(err error) error { return classify(err, postgresSentinel) }

func (Postgres) Rebind(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r != '?' {
			b.WriteRune(r)
			continue
		}
		n++
		b.WriteByte('$')
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}

func (Postgres) Schema() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS terms (
			id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			keyword     VARCHAR(255) NOT NULL,
			description TEXT NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS ix_terms_keyword ON terms (keyword)`,
	}
}
