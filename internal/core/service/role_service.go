package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/backoffice/admin-api/internal/core/domain"
	"github.com/backoffice/admin-api/internal/core/ports"
)

type roleService struct {
	repo ports.RoleRepository
	log  zerolog.Logger
}

// NewRoleService returns the RoleService implementation.
func NewRoleService(repo ports.RoleRepository, log zerolog.Logger) ports.RoleService {
	return &roleService{repo: repo, log: log}
}

func (s *roleService) Get(ctx context.Context, id string) (*domain.Role, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *roleService) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Role, int64, error) {
	return s.repo.List(ctx, clampFilter(filter))
}

func (s *roleService) Create(ctx context.Context, actorID string, in ports.RoleInput) (*domain.Role, error) {
	now := time.Now().UTC()
	role := &domain.Role{
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedByID: actorID,
		Name:        in.Name,
	}

	created, err := s.repo.Insert(ctx, role)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("role_id", created.ID).Str("name", created.Name).Msg("role created")
	return created, nil
}

func (s *roleService) Update(ctx context.Context, actorID, id string, in ports.RoleInput) (*domain.Role, error) {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		role.Name = in.Name
	}
	role.Version++
	role.UpdatedByID = actorID
	role.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, role)
}

func (s *roleService) ChangeActive(ctx context.Context, actorID, id string, active bool) error {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	role.Active = active
	role.Version++
	role.UpdatedByID = actorID
	role.UpdatedAt = time.Now().UTC()

	_, err = s.repo.Update(ctx, role)
	return err
}

func (s *roleService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
