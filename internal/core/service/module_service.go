package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/backoffice/admin-api/internal/core/domain"
	"github.com/backoffice/admin-api/internal/core/ports"
)

type moduleService struct {
	repo ports.ModuleRepository
	log  zerolog.Logger
}

// NewModuleService returns the ModuleService implementation.
func NewModuleService(repo ports.ModuleRepository, log zerolog.Logger) ports.ModuleService {
	return &moduleService{repo: repo, log: log}
}

func (s *moduleService) Get(ctx context.Context, id string) (*domain.Module, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *moduleService) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Module, int64, error) {
	return s.repo.List(ctx, clampFilter(filter))
}

func (s *moduleService) Create(ctx context.Context, actorID string, in ports.ModuleInput) (*domain.Module, error) {
	now := time.Now().UTC()
	module := &domain.Module{
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedByID: actorID,
		Name:        in.Name,
		Path:        in.Path,
	}
	return s.repo.Insert(ctx, module)
}

func (s *moduleService) Update(ctx context.Context, actorID, id string, in ports.ModuleInput) (*domain.Module, error) {
	module, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		module.Name = in.Name
	}
	if in.Path != "" {
		module.Path = in.Path
	}
	module.Version++
	module.UpdatedByID = actorID
	module.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, module)
}

func (s *moduleService) ChangeActive(ctx context.Context, actorID, id string, active bool) error {
	module, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	module.Active = active
	module.Version++
	module.UpdatedByID = actorID
	module.UpdatedAt = time.Now().UTC()

	_, err = s.repo.Update(ctx, module)
	return err
}

func (s *moduleService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
