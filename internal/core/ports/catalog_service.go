package ports

import (
	"context"

	"github.com/backoffice/admin-api/internal/core/domain"
)

// RoleInput is the DTO for creating or updating a role.
type RoleInput struct {
	Name string
}

type RoleService interface {
	Get(ctx context.Context, id string) (*domain.Role, error)
	List(ctx context.Context, filter ListFilter) ([]*domain.Role, int64, error)
	Create(ctx context.Context, actorID string, in RoleInput) (*domain.Role, error)
	Update(ctx context.Context, actorID, id string, in RoleInput) (*domain.Role, error)
	ChangeActive(ctx context.Context, actorID, id string, active bool) error
	Delete(ctx context.Context, id string) error
}

// MenuInput is the DTO for creating or updating a menu.
type MenuInput struct {
	Name    string
	Icon    string
	Order   int
	RoleIDs []string
}

// MenuItemInput is the DTO for creating or updating a menu item.
type MenuItemInput struct {
	Name         string
	Icon         string
	Order        int
	MenuID       string
	ModuleID     string
	RoleIDs      []string
	Capabilities domain.Capabilities
}

type MenuService interface {
	Get(ctx context.Context, id string) (*domain.Menu, error)
	List(ctx context.Context, filter ListFilter) ([]*domain.Menu, int64, error)
	Create(ctx context.Context, actorID string, in MenuInput) (*domain.Menu, error)
	Update(ctx context.Context, actorID, id string, in MenuInput) (*domain.Menu, error)
	ChangeActive(ctx context.Context, actorID, id string, active bool) error
	Delete(ctx context.Context, id string) error

	GetItem(ctx context.Context, id string) (*domain.MenuItem, error)
	ListItems(ctx context.Context, menuID string, filter ListFilter) ([]*domain.MenuItem, int64, error)
	CreateItem(ctx context.Context, actorID string, in MenuItemInput) (*domain.MenuItem, error)
	UpdateItem(ctx context.Context, actorID, id string, in MenuItemInput) (*domain.MenuItem, error)
	ChangeItemActive(ctx context.Context, actorID, id string, active bool) error
	DeleteItem(ctx context.Context, id string) error
}

// ModuleInput is the DTO for creating or updating a module.
type ModuleInput struct {
	Name string
	Path string
}

type ModuleService interface {
	Get(ctx context.Context, id string) (*domain.Module, error)
	List(ctx context.Context, filter ListFilter) ([]*domain.Module, int64, error)
	Create(ctx context.Context, actorID string, in ModuleInput) (*domain.Module, error)
	Update(ctx context.Context, actorID, id string, in ModuleInput) (*domain.Module, error)
	ChangeActive(ctx context.Context, actorID, id string, active bool) error
	Delete(ctx context.Context, id string) error
}

// ProductInput is the DTO for creating or updating a product.
type ProductInput struct {
	Name          string
	Description   string
	Image         string
	Price         float64
	StockQuantity int
}

type ProductService interface {
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, filter ListFilter) ([]*domain.Product, int64, error)
	Create(ctx context.Context, actorID string, in ProductInput) (*domain.Product, error)
	Update(ctx context.Context, actorID, id string, in ProductInput) (*domain.Product, error)
	ChangeActive(ctx context.Context, actorID, id string, active bool) error
	Delete(ctx context.Context, id string) error
}
