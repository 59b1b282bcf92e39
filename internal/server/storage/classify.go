package storage

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/common"
)

// SQLSTATE codes the classifier recognises.
const (
	pgUniqueViolation          = "23505"
	pgLockNotAvailable         = "55P03"
	pgQueryCanceled            = "57014"
	pgAdminShutdown            = "57P01"
	pgCannotConnectNow         = "57P03"
	pgTooManyConnections       = "53300"
	pgConnectionExceptionClass = "08"
)

func classify(err error, engine func(error) error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, common.ErrorAlreadyExists) || errors.Is(err, common.ErrorStoreUnavailable) {
		return err
	}
	if sentinel := engine(err); sentinel != nil {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("%w: %w", common.ErrorStoreUnavailable, err)
	}
	return err
}

func sqliteSentinel(err error) error {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return nil
	}
	code := se.Code()
	switch {
	case code == sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return common.ErrorAlreadyExists
	case code&0xff == sqlite3.SQLITE_BUSY, code&0xff == sqlite3.SQLITE_LOCKED, code&0xff == sqlite3.SQLITE_CANTOPEN:
		return common.ErrorStoreUnavailable
	default:
		return nil
	}
}

func postgresSentinel(err error) error {
	var pe *pgconn.PgError
	if errors.As(err, &pe) {
		switch {
		case pe.Code == pgUniqueViolation:
			return common.ErrorAlreadyExists
		case pe.Code == pgLockNotAvailable, pe.Code == pgQueryCanceled, pe.Code == pgAdminShutdown,
			pe.Code == pgCannotConnectNow, pe.Code == pgTooManyConnections,
			len(pe.Code) == 5 && pe.Code[:2] == pgConnectionExceptionClass:
			return common.ErrorStoreUnavailable
		}
		return nil
	}

	var ce *pgconn.ConnectError
	if errors.As(err, &ce) || pgconn.Timeout(err) {
		return common.ErrorStoreUnavailable
	}
	return nil
}
