package storage

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/common"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DatabaseDSN = filepath.Join(t.TempDir(), "nested", "glossary.db")
	cfg.BusyTimeout = 200 * time.Millisecond
	cfg.OperationTimeout = time.Second
	return cfg
}

func openSQLite(t *testing.T) (*sql.DB, Dialect) {
	t.Helper()
	db, dialect, err := Open(context.Background(), testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	for _, stmt := range dialect.Schema() {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
	return db, dialect
}

func TestDialectFor(t *testing.T) {
	d, err := DialectFor(config.DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, "sqlite3", d.GooseDialect())

	d, err = DialectFor(config.DriverPostgres)
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.GooseDialect())

	_, err = DialectFor("oracle")
	require.Error(t, err)
}

func TestRebind(t *testing.T) {
	q := "UPDATE terms SET keyword = ?, description = ? WHERE id = ?"
	assert.Equal(t, q, SQLite{}.Rebind(q))
	assert.Equal(t, "UPDATE terms SET keyword = $1, description = $2 WHERE id = $3", Postgres{}.Rebind(q))
}

func TestSQLiteDSN(t *testing.T) {
	got := SQLiteDSN("glossary.db", 20*time.Second)
	assert.Contains(t, got, "glossary.db?")
	assert.Contains(t, got, "busy_timeout%2820000%29")
	assert.Contains(t, got, "_txlock=immediate")

	got = SQLiteDSN("file:glossary.db?cache=private", time.Second)
	assert.Contains(t, got, "cache=private&")
}

func TestSQLitePath(t *testing.T) {
	assert.Equal(t, "data/glossary.db", sqlitePath("file:data/glossary.db?cache=private"))
	assert.Equal(t, "", sqlitePath(":memory:"))
	assert.Equal(t, "", sqlitePath("file:x?mode=memory"))
}

func TestPostgresConfig_SetsLockTimeout(t *testing.T) {
	pc, err := PostgresConfig("postgres://u:p@localhost:5432/glossary", 1500*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, "1500", pc.RuntimeParams["lock_timeout"])

	_, err = PostgresConfig("postgres://%zz", time.Second)
	require.Error(t, err)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	cfg := testConfig(t)
	cfg.DatabaseDriver = "oracle"
	_, _, err := Open(context.Background(), cfg)
	require.Error(t, err)
}

func TestSQLiteClassify_UniqueViolation(t *testing.T) {
	db, dialect := openSQLite(t)
	now := time.Now().UTC()

	_, err := db.Exec(`INSERT INTO terms (keyword, description, created_at, updated_at) VALUES (?, ?, ?, ?)`, "API", "x", now, now)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO terms (keyword, description, created_at, updated_at) VALUES (?, ?, ?, ?)`, "API", "y", now, now)
	require.Error(t, err)

	err = dialect.Classify(err)
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
	assert.Equal(t, common.OutcomeAlreadyExists, common.OutcomeOf(err))
}

func TestSQLiteClassify_Busy(t *testing.T) {
	db, dialect := openSQLite(t)
	ctx := context.Background()

	holder, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	defer func() { _ = holder.Rollback() }()
	_, err = holder.Exec(`DELETE FROM terms`)
	require.NoError(t, err)

	_, err = db.BeginTx(ctx, nil)
	require.Error(t, err, "second immediate transaction must time out")
	assert.ErrorIs(t, dialect.Classify(err), common.ErrorStoreUnavailable)
}

func TestClassify_Generic(t *testing.T) {
	for _, d := range []Dialect{SQLite{}, Postgres{}} {
		assert.NoError(t, d.Classify(nil))

		plain := errors.New("boom")
		assert.Same(t, plain, d.Classify(plain))

		assert.ErrorIs(t, d.Classify(fmt.Errorf("q: %w", context.DeadlineExceeded)), common.ErrorStoreUnavailable)
		assert.ErrorIs(t, d.Classify(driver.ErrBadConn), common.ErrorStoreUnavailable)
		assert.ErrorIs(t, d.Classify(sql.ErrConnDone), common.ErrorStoreUnavailable)

		already := fmt.Errorf("%w: dup", common.ErrorAlreadyExists)
		assert.Same(t, already, d.Classify(already))
	}
}

func TestPostgresClassify(t *testing.T) {
	tests := []struct {
		name string
		code string
		want error
	}{
		{"unique", "23505", common.ErrorAlreadyExists},
		{"lock timeout", "55P03", common.ErrorStoreUnavailable},
		{"admin shutdown", "57P01", common.ErrorStoreUnavailable},
		{"too many connections", "53300", common.ErrorStoreUnavailable},
		{"connection failure", "08006", common.ErrorStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Postgres{}.Classify(fmt.Errorf("exec: %w", &pgconn.PgError{Code: tt.code}))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("other constraint", func(t *testing.T) {
		pe := &pgconn.PgError{Code: "23502"}
		err := Postgres{}.Classify(pe)
		assert.False(t, errors.Is(err, common.ErrorAlreadyExists))
		assert.False(t, errors.Is(err, common.ErrorStoreUnavailable))
	})
}
