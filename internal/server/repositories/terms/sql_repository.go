// Package terms implements the terms repository on database/sql.
package terms

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/common"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/dbx"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/models"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/storage"
)

type SQLRepository struct {
	db      dbx.DBTX
	dialect storage.Dialect
}

func NewSQLRepository(db dbx.DBTX, dialect storage.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

func (r *SQLRepository) List(ctx context.Context) ([]models.Term, error) {
	query := `SELECT id, keyword, description, created_at, updated_at FROM terms
		 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", r.dialect.Classify(err))
	}
	defer rows.Close()

	result := []models.Term{}
	for rows.Next() {
		var t models.Term
		if err := rows.Scan(&t.ID, &t.Keyword, &t.Description, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, normalize(t))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", r.dialect.Classify(err))
	}

	return result, nil
}

func (r *SQLRepository) GetByKeyword(ctx context.Context, keyword string) (*models.Term, error) {
	query := r.dialect.Rebind(
		`SELECT id, keyword, description, created_at, updated_at FROM terms
		 WHERE keyword = ?`)

	var t models.Term
	err := r.db.QueryRowContext(ctx, query, keyword).Scan(&t.ID, &t.Keyword, &t.Description, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", r.dialect.Classify(err))
	}

	t = normalize(t)
	return &t, nil
}

func (r *SQLRepository) Insert(ctx context.Context, term *models.Term) (*models.Term, error) {
	query := r.dialect.Rebind(
		`INSERT INTO terms (keyword, description, created_at, updated_at)
		 VALUES (?, ?, ?, ?)
		 RETURNING id`)

	err := r.db.QueryRowContext(ctx, query,
		term.Keyword, term.Description, term.CreatedAt, term.UpdatedAt).Scan(&term.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", r.dialect.Classify(err))
	}

	return term, nil
}

// Update rewrites every mutable column of the row identified by term.ID.
func (r *SQLRepository) Update(ctx context.Context, term *models.Term) (*models.Term, error) {
	query := r.dialect.Rebind(
		`UPDATE terms SET keyword = ?, description = ?, updated_at = ?
		 WHERE id = ?`)

	res, err := r.db.ExecContext(ctx, query, term.Keyword, term.Description, term.UpdatedAt, term.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", r.dialect.Classify(err))
	}

	if err := expectOneRow(res); err != nil {
		return nil, err
	}
	return term, nil
}

func (r *SQLRepository) Delete(ctx context.Context, keyword string) error {
	query := r.dialect.Rebind(`DELETE FROM terms WHERE keyword = ?`)

	res, err := r.db.ExecContext(ctx, query, keyword)
	if err != nil {
		return fmt.Errorf("db error: %w", r.dialect.Classify(err))
	}

	return expectOneRow(res)
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// normalize reports stored instants in UTC whatever zone the driver parsed.
func normalize(t models.Term) models.Term {
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return t
}

var _ Repository = (*SQLRepository)(nil)

// Precision rounds t down to the microsecond, the finest instant every
// supported engine keeps.
func Precision(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
