package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/backoffice/admin-api/internal/core/domain"
	"github.com/backoffice/admin-api/internal/core/ports"
)

type productService struct {
	repo ports.ProductRepository
	log  zerolog.Logger
}

// NewProductService returns the ProductService implementation.
func NewProductService(repo ports.ProductRepository, log zerolog.Logger) ports.ProductService {
	return &productService{repo: repo, log: log}
}

func (s *productService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *productService) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Product, int64, error) {
	return s.repo.List(ctx, clampFilter(filter))
}

func (s *productService) Create(ctx context.Context, actorID string, in ports.ProductInput) (*domain.Product, error) {
	now := time.Now().UTC()
	product := &domain.Product{
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
		CreatedByID:   actorID,
		Name:          in.Name,
		Description:   in.Description,
		Image:         in.Image,
		Price:         in.Price,
		StockQuantity: in.StockQuantity,
	}

	created, err := s.repo.Insert(ctx, product)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

func (s *productService) Update(ctx context.Context, actorID, id string, in ports.ProductInput) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		product.Name = in.Name
	}
	if in.Description != "" {
		product.Description = in.Description
	}
	if in.Image != "" {
		product.Image = in.Image
	}
	if in.Price != 0 {
		product.Price = in.Price
	}
	if in.StockQuantity != 0 {
		product.StockQuantity = in.StockQuantity
	}
	product.Version++
	product.UpdatedByID = actorID
	product.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, product)
}

func (s *productService) ChangeActive(ctx context.Context, actorID, id string, active bool) error {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	product.Active = active
	product.Version++
	product.UpdatedByID = actorID
	product.UpdatedAt = time.Now().UTC()

	_, err = s.repo.Update(ctx, product)
	return err
}

func (s *productService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
