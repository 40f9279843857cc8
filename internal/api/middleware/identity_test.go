package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/backoffice/admin-api/internal/core/domain"
	"github.com/backoffice/admin-api/internal/core/ports"
)

type stubUserFinder struct {
	users map[string]*domain.User
}

func (s *stubUserFinder) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *stubUserFinder) FindActiveByUsername(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserFinder) CountByDocumentNumber(context.Context, string) (int64, error) {
	return 0, nil
}

func (s *stubUserFinder) List(context.Context, ports.ListFilter) ([]*domain.User, int64, error) {
	return nil, 0, nil
}

func (s *stubUserFinder) Insert(_ context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}

func (s *stubUserFinder) Update(_ context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}

func (s *stubUserFinder) Delete(context.Context, string) error { return nil }

func TestActiveUser_InjectsRole(t *testing.T) {
	e := echo.New()
	repo := &stubUserFinder{users: map[string]*domain.User{
		"u1": {ID: "u1", Active: true, RoleID: "r1"},
	}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "u1")

	called := false
	mw := ActiveUser(repo)
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get("role_id") != "r1" {
			t.Fatalf("role_id not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestActiveUser_RejectsInactive(t *testing.T) {
	e := echo.New()
	repo := &stubUserFinder{users: map[string]*domain.User{
		"u1": {ID: "u1", Active: false, RoleID: "r1"},
	}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "u1")

	mw := ActiveUser(repo)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestActiveUser_RejectsUnknown(t *testing.T) {
	e := echo.New()
	repo := &stubUserFinder{users: map[string]*domain.User{}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "ghost")

	mw := ActiveUser(repo)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
