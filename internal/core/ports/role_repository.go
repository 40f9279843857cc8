package ports

import (
	"context"

	"github.com/backoffice/admin-api/internal/core/domain"
)

// RoleRepository defines persistence for roles.
type RoleRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Role, error)
	List(ctx context.Context, filter ListFilter) ([]*domain.Role, int64, error)
	Insert(ctx context.Context, role *domain.Role) (*domain.Role, error)
	Update(ctx context.Context, role *domain.Role) (*domain.Role, error)
	Delete(ctx context.Context, id string) error
}
