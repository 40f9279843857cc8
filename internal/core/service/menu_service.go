package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/backoffice/admin-api/internal/core/domain"
	"github.com/backoffice/admin-api/internal/core/ports"
)

type menuService struct {
	menus ports.MenuRepository
	items ports.MenuItemRepository
	log   zerolog.Logger
}

// NewMenuService returns the MenuService implementation covering menus and
// their items.
func NewMenuService(menus ports.MenuRepository, items ports.MenuItemRepository, log zerolog.Logger) ports.MenuService {
	return &menuService{menus: menus, items: items, log: log}
}

func (s *menuService) Get(ctx context.Context, id string) (*domain.Menu, error) {
	return s.menus.FindByID(ctx, id)
}

func (s *menuService) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Menu, int64, error) {
	return s.menus.List(ctx, clampFilter(filter))
}

func (s *menuService) Create(ctx context.Context, actorID string, in ports.MenuInput) (*domain.Menu, error) {
	now := time.Now().UTC()
	menu := &domain.Menu{
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedByID: actorID,
		Name:        in.Name,
		Icon:        in.Icon,
		Order:       in.Order,
		RoleIDs:     in.RoleIDs,
	}

	created, err := s.menus.Insert(ctx, menu)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("menu_id", created.ID).Str("name", created.Name).Msg("menu created")
	return created, nil
}

func (s *menuService) Update(ctx context.Context, actorID, id string, in ports.MenuInput) (*domain.Menu, error) {
	menu, err := s.menus.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		menu.Name = in.Name
	}
	if in.Icon != "" {
		menu.Icon = in.Icon
	}
	if in.Order != 0 {
		menu.Order = in.Order
	}
	if in.RoleIDs != nil {
		menu.RoleIDs = in.RoleIDs
	}
	menu.Version++
	menu.UpdatedByID = actorID
	menu.UpdatedAt = time.Now().UTC()

	return s.menus.Update(ctx, menu)
}

func (s *menuService) ChangeActive(ctx context.Context, actorID, id string, active bool) error {
	menu, err := s.menus.FindByID(ctx, id)
	if err != nil {
		return err
	}

	menu.Active = active
	menu.Version++
	menu.UpdatedByID = actorID
	menu.UpdatedAt = time.Now().UTC()

	_, err = s.menus.Update(ctx, menu)
	return err
}

func (s *menuService) Delete(ctx context.Context, id string) error {
	return s.menus.Delete(ctx, id)
}

func (s *menuService) GetItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	return s.items.FindByID(ctx, id)
}

func (s *menuService) ListItems(ctx context.Context, menuID string, filter ports.ListFilter) ([]*domain.MenuItem, int64, error) {
	return s.items.List(ctx, menuID, clampFilter(filter))
}

func (s *menuService) CreateItem(ctx context.Context, actorID string, in ports.MenuItemInput) (*domain.MenuItem, error) {
	// The parent menu must exist; a dangling menu_id would silently vanish
	// from every permission tree.
	if _, err := s.menus.FindByID(ctx, in.MenuID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	item := &domain.MenuItem{
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
		CreatedByID:  actorID,
		Name:         in.Name,
		Icon:         in.Icon,
		Order:        in.Order,
		MenuID:       in.MenuID,
		ModuleID:     in.ModuleID,
		RoleIDs:      in.RoleIDs,
		Capabilities: in.Capabilities,
	}

	created, err := s.items.Insert(ctx, item)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("menu_item_id", created.ID).Str("menu_id", created.MenuID).Msg("menu item created")
	return created, nil
}

func (s *menuService) UpdateItem(ctx context.Context, actorID, id string, in ports.MenuItemInput) (*domain.MenuItem, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		item.Name = in.Name
	}
	if in.Icon != "" {
		item.Icon = in.Icon
	}
	if in.Order != 0 {
		item.Order = in.Order
	}
	if in.MenuID != "" && in.MenuID != item.MenuID {
		if _, err := s.menus.FindByID(ctx, in.MenuID); err != nil {
			return nil, err
		}
		item.MenuID = in.MenuID
	}
	if in.ModuleID != "" {
		item.ModuleID = in.ModuleID
	}
	if in.RoleIDs != nil {
		item.RoleIDs = in.RoleIDs
	}
	item.Capabilities = in.Capabilities
	item.Version++
	item.UpdatedByID = actorID
	item.UpdatedAt = time.Now().UTC()

	return s.items.Update(ctx, item)
}

func (s *menuService) ChangeItemActive(ctx context.Context, actorID, id string, active bool) error {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return err
	}

	item.Active = active
	item.Version++
	item.UpdatedByID = actorID
	item.UpdatedAt = time.Now().UTC()

	_, err = s.items.Update(ctx, item)
	return err
}

func (s *menuService) DeleteItem(ctx context.Context, id string) error {
	return s.items.Delete(ctx, id)
}
