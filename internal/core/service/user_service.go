package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/backoffice/admin-api/internal/core/domain"
	"github.com/backoffice/admin-api/internal/core/ports"
)

// bcryptCost matches the hashing work factor already present in the stored
// credential base; changing it only affects newly written hashes.
const bcryptCost = 12

type userService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

// NewUserService returns the UserService implementation.
func NewUserService(repo ports.UserRepository, log zerolog.Logger) ports.UserService {
	return &userService{repo: repo, log: log}
}

func (s *userService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *userService) List(ctx context.Context, filter ports.ListFilter) ([]*domain.User, int64, error) {
	return s.repo.List(ctx, clampFilter(filter))
}

func (s *userService) Create(ctx context.Context, actorID string, in ports.UserInput) (*domain.User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if in.DocumentNumber != "" {
		n, err := s.repo.CountByDocumentNumber(ctx, in.DocumentNumber)
		if err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		if n > 0 {
			return nil, domain.ErrDocumentTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("create user: hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Active:         true,
		Version:        0,
		CreatedAt:      now,
		UpdatedAt:      now,
		CreatedByID:    actorID,
		Name:           in.Name,
		LastName:       in.LastName,
		Username:       in.Username,
		PasswordHash:   string(hash),
		DocumentNumber: in.DocumentNumber,
		Birthdate:      in.Birthdate,
		Phone:          in.Phone,
		Email:          in.Email,
		ProfilePhoto:   in.ProfilePhoto,
		RoleID:         in.RoleID,
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user created")
	return created, nil
}

// Update overwrites only the supplied fields, mirroring the admin form where
// blank inputs mean "leave unchanged". Password changes go through
// ChangePassword exclusively.
func (s *userService) Update(ctx context.Context, actorID, id string, in ports.UserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.LastName != "" {
		user.LastName = in.LastName
	}
	if in.Username != "" {
		user.Username = in.Username
	}
	if in.DocumentNumber != "" {
		user.DocumentNumber = in.DocumentNumber
	}
	if in.Birthdate != nil {
		user.Birthdate = in.Birthdate
	}
	if in.Phone != "" {
		user.Phone = in.Phone
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.ProfilePhoto != "" {
		user.ProfilePhoto = in.ProfilePhoto
	}
	if in.RoleID != "" {
		user.RoleID = in.RoleID
	}

	user.Version++
	user.UpdatedByID = actorID
	user.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, user)
}

func (s *userService) ChangeActive(ctx context.Context, actorID, id string, active bool) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	user.Active = active
	user.Version++
	user.UpdatedByID = actorID
	user.UpdatedAt = time.Now().UTC()

	if _, err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	s.log.Info().Str("user_id", id).Bool("active", active).Msg("user active flag changed")
	return nil
}

func (s *userService) ChangePassword(ctx context.Context, actorID, id, password string) error {
	if password == "" {
		return domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("change password: hash: %w", err)
	}

	user.PasswordHash = string(hash)
	user.Version++
	user.UpdatedByID = actorID
	user.UpdatedAt = time.Now().UTC()

	if _, err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	s.log.Info().Str("user_id", id).Msg("password changed")
	return nil
}

// ResetPassword sets the password back to the user's document number, the
// bootstrap credential handed out with new accounts.
func (s *userService) ResetPassword(ctx context.Context, actorID, id string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user.DocumentNumber == "" {
		return fmt.Errorf("reset password: user %s has no document number", id)
	}
	return s.ChangePassword(ctx, actorID, id, user.DocumentNumber)
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

func (s *userService) DocumentNumberAvailable(ctx context.Context, documentNumber string) (bool, error) {
	n, err := s.repo.CountByDocumentNumber(ctx, documentNumber)
	if err != nil {
		return false, fmt.Errorf("document availability: %w", err)
	}
	return n == 0, nil
}
