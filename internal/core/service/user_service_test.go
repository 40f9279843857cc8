package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/backoffice/admin-api/internal/core/domain"
	"github.com/backoffice/admin-api/internal/core/ports"
)

// memUserRepo is an in-memory UserRepository with insert/update semantics the
// user service relies on.
type memUserRepo struct {
	seq   int
	users map[string]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindActiveByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username && u.Active {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) CountByDocumentNumber(_ context.Context, doc string) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.DocumentNumber == doc {
			n++
		}
	}
	return n, nil
}

func (r *memUserRepo) List(_ context.Context, _ ports.ListFilter) ([]*domain.User, int64, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

func (r *memUserRepo) Insert(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	clone := *u
	clone.ID = fmt.Sprintf("u%d", r.seq)
	r.users[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *memUserRepo) Update(_ context.Context, u *domain.User) (*domain.User, error) {
	if _, ok := r.users[u.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	r.users[u.ID] = &clone
	out := clone
	return &out, nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func TestUserService_Create_HashesPassword(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	user, err := svc.Create(context.Background(), "admin", ports.UserInput{
		Username:       "alice",
		Password:       "plain-secret",
		DocumentNumber: "10203040",
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if user.PasswordHash == "plain-secret" || user.PasswordHash == "" {
		t.Fatalf("password not hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("plain-secret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if !user.Active || user.Version != 0 || user.CreatedByID != "admin" {
		t.Fatalf("unexpected lifecycle fields: %+v", user)
	}
}

func TestUserService_Create_Validation(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.Create(context.Background(), "admin", ports.UserInput{Username: "", Password: "x"}); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "admin", ports.UserInput{Username: "x", Password: ""}); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_Create_DuplicateDocument(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.Create(context.Background(), "admin", ports.UserInput{Username: "a", Password: "p", DocumentNumber: "111"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(context.Background(), "admin", ports.UserInput{Username: "b", Password: "p", DocumentNumber: "111"}); err != domain.ErrDocumentTaken {
		t.Fatalf("expected ErrDocumentTaken, got %v", err)
	}
}

func TestUserService_Update_PartialAndVersion(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), "admin", ports.UserInput{
		Username: "alice", Password: "p", Name: "Alice", Email: "a@example.com",
	})

	updated, err := svc.Update(context.Background(), "admin2", created.ID, ports.UserInput{Phone: "555-0101"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Phone != "555-0101" {
		t.Fatalf("phone not applied: %+v", updated)
	}
	if updated.Name != "Alice" || updated.Email != "a@example.com" {
		t.Fatalf("blank fields must not overwrite: %+v", updated)
	}
	if updated.Version != 1 || updated.UpdatedByID != "admin2" {
		t.Fatalf("version/actor not tracked: %+v", updated)
	}
}

func TestUserService_ResetPassword_UsesDocumentNumber(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), "admin", ports.UserInput{
		Username: "alice", Password: "original", DocumentNumber: "99887766",
	})

	if err := svc.ResetPassword(context.Background(), "admin", created.ID); err != nil {
		t.Fatalf("reset password: %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), created.ID)
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("99887766")); err != nil {
		t.Fatalf("password not reset to document number: %v", err)
	}
}

func TestUserService_ChangeActive(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), "admin", ports.UserInput{Username: "alice", Password: "p"})

	if err := svc.ChangeActive(context.Background(), "admin", created.ID, false); err != nil {
		t.Fatalf("change active: %v", err)
	}
	stored, _ := repo.FindByID(context.Background(), created.ID)
	if stored.Active {
		t.Fatalf("user still active")
	}
	if _, err := repo.FindActiveByUsername(context.Background(), "alice"); err != domain.ErrUserNotFound {
		t.Fatalf("deactivated user still resolvable for login: %v", err)
	}
}

func TestUserService_DocumentNumberAvailable(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	ok, err := svc.DocumentNumberAvailable(context.Background(), "123")
	if err != nil || !ok {
		t.Fatalf("expected available, got %v %v", ok, err)
	}

	_, _ = svc.Create(context.Background(), "admin", ports.UserInput{Username: "a", Password: "p", DocumentNumber: "123"})

	ok, err = svc.DocumentNumberAvailable(context.Background(), "123")
	if err != nil || ok {
		t.Fatalf("expected taken, got %v %v", ok, err)
	}
}
