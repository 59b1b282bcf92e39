// Package services implements the glossary directory on top of the terms
// repository. Every operation runs in its own scope: reads on one pooled
// connection, writes inside one transaction, both bounded by the configured
// operation timeout.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/common"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/dbx"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/config"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/models"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/repositories/repomanager"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/repositories/terms"
)

// Directory is the transport-neutral contract both adapters call. Errors
// classify with common.OutcomeOf.
type Directory interface {
	List(ctx context.Context) ([]models.Term, error)
	Get(ctx context.Context, keyword string) (*models.Term, error)
	Create(ctx context.Context, in CreateTermInput) (*models.Term, error)
	Update(ctx context.Context, keyword string, patch models.TermPatch) (*models.Term, error)
	Delete(ctx context.Context, keyword string) error
}

type TermService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	timeout     time.Duration
	now         func() time.Time
}

// Option customises a TermService.
type Option func(*TermService)

// WithClock replaces the wall clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *TermService) { s.now = now }
}

func NewTermService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, opts ...Option) *TermService {
	s := &TermService{
		db:          db,
		repomanager: m,
		timeout:     cfg.OperationTimeout,
		now:         time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *TermService) List(ctx context.Context) ([]models.Term, error) {
	ctx, cancel := s.scope(ctx)
	defer cancel()

	var result []models.Term
	err := dbx.WithConn(ctx, s.db, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		result, err = s.repomanager.Terms(conn).List(ctx)
		return err
	})
	if err != nil {
		return nil, s.fail("list terms", err)
	}
	return result, nil
}

func (s *TermService) Get(ctx context.Context, keyword string) (*models.Term, error) {
	ctx, cancel := s.scope(ctx)
	defer cancel()

	var term *models.Term
	err := dbx.WithConn(ctx, s.db, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		term, err = s.repomanager.Terms(conn).GetByKeyword(ctx, keyword)
		return err
	})
	if err != nil {
		return nil, s.fail("get term", err)
	}
	return term, nil
}

// Create inserts a new term. The existence check runs first so the common
// duplicate is answered without a write; the unique keyword index still
// decides races, and its violation surfaces as common.ErrorAlreadyExists.
func (s *TermService) Create(ctx context.Context, in CreateTermInput) (*models.Term, error) {
	if err := ValidateCreate(in); err != nil {
		return nil, err
	}

	ctx, cancel := s.scope(ctx)
	defer cancel()

	var created *models.Term
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Terms(tx)

		if err := absent(ctx, repo, in.Keyword); err != nil {
			return err
		}

		now := terms.Precision(s.now())
		var err error
		created, err = repo.Insert(ctx, &models.Term{
			Keyword:     in.Keyword,
			Description: in.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		return err
	})
	if err != nil {
		return nil, s.fail("create term", err)
	}
	return created, nil
}

// Update applies patch to the term stored under keyword. An empty patch
// returns the term untouched.
func (s *TermService) Update(ctx context.Context, keyword string, patch models.TermPatch) (*models.Term, error) {
	if err := ValidatePatch(patch); err != nil {
		return nil, err
	}
	if patch.Empty() {
		return s.Get(ctx, keyword)
	}

	ctx, cancel := s.scope(ctx)
	defer cancel()

	var updated *models.Term
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Terms(tx)

		term, err := repo.GetByKeyword(ctx, keyword)
		if err != nil {
			return err
		}

		if patch.Keyword != nil && *patch.Keyword != term.Keyword {
			if err := absent(ctx, repo, *patch.Keyword); err != nil {
				return err
			}
			term.Keyword = *patch.Keyword
		}
		if patch.Description != nil {
			term.Description = *patch.Description
		}
		term.UpdatedAt = s.next(term.UpdatedAt)

		updated, err = repo.Update(ctx, term)
		return err
	})
	if err != nil {
		return nil, s.fail("update term", err)
	}
	return updated, nil
}

func (s *TermService) Delete(ctx context.Context, keyword string) error {
	ctx, cancel := s.scope(ctx)
	defer cancel()

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Terms(tx).Delete(ctx, keyword)
	})
	if err != nil {
		return s.fail("delete term", err)
	}
	return nil
}

func (s *TermService) scope(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// next returns an updatedAt strictly after prev.
func (s *TermService) next(prev time.Time) time.Time {
	now := terms.Precision(s.now())
	if !now.After(prev) {
		return prev.Add(time.Microsecond)
	}
	return now
}

// fail classifies err into the outcome taxonomy. Faults no sentinel covers
// are reported as common.ErrorInternal.
func (s *TermService) fail(op string, err error) error {
	err = s.repomanager.Dialect().Classify(err)
	if common.OutcomeOf(err) == common.OutcomeInternal && !errors.Is(err, common.ErrorInternal) {
		err = fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// absent reports common.ErrorAlreadyExists when keyword is taken.
func absent(ctx context.Context, repo terms.Repository, keyword string) error {
	_, err := repo.GetByKeyword(ctx, keyword)
	switch {
	case err == nil:
		return fmt.Errorf("%w: keyword %q", common.ErrorAlreadyExists, keyword)
	case errors.Is(err, common.ErrorNotFound):
		return nil
	default:
		return err
	}
}

var _ Directory = (*TermService)(nil)
