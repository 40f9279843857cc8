package ports

import (
	"context"

	"github.com/backoffice/admin-api/internal/core/domain"
)

// ProductRepository defines persistence for catalog products.
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, filter ListFilter) ([]*domain.Product, int64, error)
	Insert(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
