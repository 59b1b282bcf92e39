package repomanager

import (
	"context"
	"database/sql"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/dbx"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/repositories/terms"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/storage"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Dialect() storage.Dialect
	Terms(db dbx.DBTX) terms.Repository
}
