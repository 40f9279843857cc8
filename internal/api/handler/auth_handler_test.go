package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/backoffice/admin-api/internal/core/domain"
	"github.com/backoffice/admin-api/internal/core/ports"
)

type stubSessionService struct {
	loginFn   func(ctx context.Context, in ports.LoginInput) (*ports.SessionPayload, error)
	currentFn func(ctx context.Context, userID string) (*ports.SessionPayload, error)
}

func (s *stubSessionService) Login(ctx context.Context, in ports.LoginInput) (*ports.SessionPayload, error) {
	return s.loginFn(ctx, in)
}

func (s *stubSessionService) CurrentSession(ctx context.Context, userID string) (*ports.SessionPayload, error) {
	return s.currentFn(ctx, userID)
}

func newLoginContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Accept-Language", "en")
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := &stubSessionService{
		loginFn: func(_ context.Context, in ports.LoginInput) (*ports.SessionPayload, error) {
			if in.Username != "alice" || in.Password != "s3cret" {
				t.Fatalf("unexpected input: %+v", in)
			}
			if in.Metadata.UserAgent != "test-agent" || in.Metadata.Language != "en" {
				t.Fatalf("request metadata not captured: %+v", in.Metadata)
			}
			return &ports.SessionPayload{Token: "tok", UserID: "u1", Username: "alice"}, nil
		},
	}

	c, rec := newLoginContext(t, `{"username":"alice","password":"s3cret"}`)
	h := NewAuthHandler(svc)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var payload ports.SessionPayload
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Token != "tok" || payload.UserID != "u1" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestAuthHandler_Login_RejectedStillAnswers200(t *testing.T) {
	svc := &stubSessionService{
		loginFn: func(context.Context, ports.LoginInput) (*ports.SessionPayload, error) {
			return &ports.SessionPayload{}, nil
		},
	}

	c, rec := newLoginContext(t, `{"username":"ghost","password":"wrong"}`)
	h := NewAuthHandler(svc)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "token") {
		t.Fatalf("empty payload must not carry a token: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	svc := &stubSessionService{
		loginFn: func(context.Context, ports.LoginInput) (*ports.SessionPayload, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}

	c, _ := newLoginContext(t, `{"username":"alice"}`)
	h := NewAuthHandler(svc)
	err := h.Login(c)
	if err == nil {
		t.Fatal("expected error")
	}
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login_ThrottledPropagates(t *testing.T) {
	svc := &stubSessionService{
		loginFn: func(context.Context, ports.LoginInput) (*ports.SessionPayload, error) {
			return nil, domain.ErrTooManyAttempts
		},
	}

	c, _ := newLoginContext(t, `{"username":"alice","password":"s3cret"}`)
	h := NewAuthHandler(svc)
	if err := h.Login(c); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	svc := &stubSessionService{
		currentFn: func(_ context.Context, userID string) (*ports.SessionPayload, error) {
			if userID != "u1" {
				t.Fatalf("userID = %q, want u1", userID)
			}
			return &ports.SessionPayload{UserID: "u1", Username: "alice"}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "u1")

	h := NewAuthHandler(svc)
	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var payload ports.SessionPayload
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Token != "" {
		t.Fatalf("session check must not mint a token")
	}
	if payload.Username != "alice" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestAuthHandler_Me_MissingIdentity(t *testing.T) {
	svc := &stubSessionService{
		currentFn: func(context.Context, string) (*ports.SessionPayload, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewAuthHandler(svc)
	err := h.Me(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
