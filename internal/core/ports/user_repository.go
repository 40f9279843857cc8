package ports

import (
	"context"

	"github.com/backoffice/admin-api/internal/core/domain"
)

// UserRepository defines persistence for user records.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindActiveByUsername is the credential-store lookup: only active users
	// are considered, an absent user surfaces as domain.ErrUserNotFound.
	FindActiveByUsername(ctx context.Context, username string) (*domain.User, error)
	CountByDocumentNumber(ctx context.Context, documentNumber string) (int64, error)
	List(ctx context.Context, filter ListFilter) ([]*domain.User, int64, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
