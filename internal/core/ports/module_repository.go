package ports

import (
	"context"

	"github.com/backoffice/admin-api/internal/core/domain"
)

// ModuleRepository defines persistence for application modules.
type ModuleRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Module, error)
	List(ctx context.Context, filter ListFilter) ([]*domain.Module, int64, error)
	Insert(ctx context.Context, module *domain.Module) (*domain.Module, error)
	Update(ctx context.Context, module *domain.Module) (*domain.Module, error)
	Delete(ctx context.Context, id string) error
}
