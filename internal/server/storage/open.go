package storage

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/filex"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/config"
)

// Open connects to the configured engine, applies its contention settings
// and verifies the connection.
func Open(ctx context.Context, cfg *config.Config) (*sql.DB, Dialect, error) {
	dialect, err := DialectFor(cfg.DatabaseDriver)
	if err != nil {
		return nil, nil, err
	}

	var db *sql.DB
	switch dialect.(type) {
	case SQLite:
		if path := sqlitePath(cfg.DatabaseDSN); path != "" {
			if err := filex.EnsureParentDir(path); err != nil {
				return nil, nil, err
			}
		}
		db, err = sql.Open(dialect.Name(), SQLiteDSN(cfg.DatabaseDSN, cfg.BusyTimeout))
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
	case Postgres:
		pc, err := PostgresConfig(cfg.DatabaseDSN, cfg.BusyTimeout)
		if err != nil {
			return nil, nil, err
		}
		db = stdlib.OpenDB(*pc)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxOpenConns)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.OperationTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping %s: %w", dialect.Name(), dialect.Classify(err))
	}

	return db, dialect, nil
}

// SQLiteDSN appends the pragmas the directory relies on to a modernc DSN:
// the lock wait ceiling, WAL journaling and immediate write transactions so
// a keyword check and the write that follows it share one lock.
func SQLiteDSN(dsn string, busy time.Duration) string {
	params := url.Values{}
	params.Add("_pragma", "busy_timeout("+strconv.FormatInt(busy.Milliseconds(), 10)+")")
	params.Add("_pragma", "journal_mode(WAL)")
	params.Add("_pragma", "synchronous(NORMAL)")
	params.Add("_pragma", "foreign_keys(1)")
	params.Set("_txlock", "immediate")
	params.Set("_time_format", "sqlite")

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + params.Encode()
}

// PostgresConfig parses dsn and sets lock_timeout so contended writes fail
// instead of waiting forever.
func PostgresConfig(dsn string, lockWait time.Duration) (*pgx.ConnConfig, error) {
	pc, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	if pc.RuntimeParams == nil {
		pc.RuntimeParams = map[string]string{}
	}
	pc.RuntimeParams["lock_timeout"] = strconv.FormatInt(lockWait.Milliseconds(), 10)
	return pc, nil
}

// sqlitePath extracts the file path of a sqlite DSN, or "" for in-memory
// databases.
func sqlitePath(dsn string) string {
	path, query, _ := strings.Cut(strings.TrimPrefix(dsn, "file:"), "?")
	if path == "" || path == ":memory:" || strings.Contains(query, "mode=memory") {
		return ""
	}
	return path
}
