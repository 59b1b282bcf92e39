package terms

import (
	"context"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/models"
)

// Repository persists glossary terms. Lookups that match no row return
// common.ErrorNotFound; unique keyword clashes surface as
// common.ErrorAlreadyExists.
type Repository interface {
	List(ctx context.Context) ([]models.Term, error)
	GetByKeyword(ctx context.Context, keyword string) (*models.Term, error)
	Insert(ctx context.Context, term *models.Term) (*models.Term, error)
	Update(ctx context.Context, term *models.Term) (*models.Term, error)
	Delete(ctx context.Context, keyword string) error
}
