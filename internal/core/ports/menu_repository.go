package ports

import (
	"context"

	"github.com/backoffice/admin-api/internal/core/domain"
)

// MenuRepository defines persistence for menus.
type MenuRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Menu, error)
	List(ctx context.Context, filter ListFilter) ([]*domain.Menu, int64, error)
	Insert(ctx context.Context, menu *domain.Menu) (*domain.Menu, error)
	Update(ctx context.Context, menu *domain.Menu) (*domain.Menu, error)
	Delete(ctx context.Context, id string) error
}

// MenuItemRepository defines persistence for menu items. MenuID narrows a
// listing to one menu when non-empty.
type MenuItemRepository interface {
	FindByID(ctx context.Context, id string) (*domain.MenuItem, error)
	List(ctx context.Context, menuID string, filter ListFilter) ([]*domain.MenuItem, int64, error)
	Insert(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	Update(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	Delete(ctx context.Context, id string) error
}

// RoleGrants is the edge-set view of the role↔menu↔menu-item permission graph.
// Both queries return active nodes only, ascending by order key, and an empty
// slice when the role has no grants.
type RoleGrants interface {
	MenusForRole(ctx context.Context, roleID string) ([]domain.Menu, error)
	MenuItemsForRole(ctx context.Context, menuID, roleID string) ([]domain.MenuItem, error)
}
