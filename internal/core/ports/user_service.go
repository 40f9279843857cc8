package ports

import (
	"context"
	"time"

	"github.com/backoffice/admin-api/internal/core/domain"
)

// UserInput is the DTO for creating or updating a user. Password is only
// honoured on create; update ignores it (dedicated change-password operation).
type UserInput struct {
	Name           string
	LastName       string
	Username       string
	Password       string
	DocumentNumber string
	Birthdate      *time.Time
	Phone          string
	Email          string
	ProfilePhoto   string
	RoleID         string
}

// UserService implements user administration. actorID is the authenticated
// administrator performing the mutation, recorded on the entity.
type UserService interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, filter ListFilter) ([]*domain.User, int64, error)
	Create(ctx context.Context, actorID string, in UserInput) (*domain.User, error)
	Update(ctx context.Context, actorID, id string, in UserInput) (*domain.User, error)
	ChangeActive(ctx context.Context, actorID, id string, active bool) error
	ChangePassword(ctx context.Context, actorID, id, password string) error
	// ResetPassword sets the password back to the user's document number.
	ResetPassword(ctx context.Context, actorID, id string) error
	Delete(ctx context.Context, id string) error
	DocumentNumberAvailable(ctx context.Context, documentNumber string) (bool, error)
}
