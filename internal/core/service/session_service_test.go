package service

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/backoffice/admin-api/internal/core/domain"
	"github.com/backoffice/admin-api/internal/core/ports"
)

type stubUserRepo struct {
	users map[string]*domain.User // keyed by id
	err   error                   // forced infrastructure failure
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	if u, ok := r.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindActiveByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Username == username && u.Active {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) CountByDocumentNumber(context.Context, string) (int64, error) {
	return 0, nil
}

func (r *stubUserRepo) List(context.Context, ports.ListFilter) ([]*domain.User, int64, error) {
	return nil, 0, nil
}

func (r *stubUserRepo) Insert(_ context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}

func (r *stubUserRepo) Delete(context.Context, string) error { return nil }

type stubRoleRepo struct {
	roles map[string]*domain.Role
}

func (r *stubRoleRepo) FindByID(_ context.Context, id string) (*domain.Role, error) {
	if role, ok := r.roles[id]; ok {
		clone := *role
		return &clone, nil
	}
	return nil, domain.ErrRoleNotFound
}

func (r *stubRoleRepo) List(context.Context, ports.ListFilter) ([]*domain.Role, int64, error) {
	return nil, 0, nil
}

func (r *stubRoleRepo) Insert(_ context.Context, role *domain.Role) (*domain.Role, error) {
	return role, nil
}

func (r *stubRoleRepo) Update(_ context.Context, role *domain.Role) (*domain.Role, error) {
	return role, nil
}

func (r *stubRoleRepo) Delete(context.Context, string) error { return nil }

// stubGrants honours the RoleGrants contract: active nodes only, ascending by
// order key, role-id membership enforced.
type stubGrants struct {
	menus []domain.Menu
	items []domain.MenuItem
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func (g *stubGrants) MenusForRole(_ context.Context, roleID string) ([]domain.Menu, error) {
	var out []domain.Menu
	for _, m := range g.menus {
		if m.Active && contains(m.RoleIDs, roleID) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (g *stubGrants) MenuItemsForRole(_ context.Context, menuID, roleID string) ([]domain.MenuItem, error) {
	var out []domain.MenuItem
	for _, it := range g.items {
		if it.Active && it.MenuID == menuID && contains(it.RoleIDs, roleID) {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

type stubRecorder struct {
	records []domain.AuditLogin
}

func (r *stubRecorder) Record(rec domain.AuditLogin) {
	r.records = append(r.records, rec)
}

type stubThrottle struct {
	allowed bool
	err     error
}

func (t *stubThrottle) Allow(context.Context, string, string) (bool, error) {
	return t.allowed, t.err
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(h)
}

func newFixture(t *testing.T) (*stubUserRepo, *stubRoleRepo, *stubGrants, *stubRecorder) {
	t.Helper()
	users := &stubUserRepo{users: map[string]*domain.User{
		"u1": {
			ID:           "u1",
			Active:       true,
			Name:         "Alice",
			LastName:     "Smith",
			Username:     "alice",
			PasswordHash: hashOf(t, "s3cret"),
			ProfilePhoto: "/uploads/u1.png",
			RoleID:       "r1",
		},
		"u2": {
			ID:           "u2",
			Active:       true,
			Username:     "bob",
			PasswordHash: hashOf(t, "bobpass"),
		},
		"u3": {
			ID:           "u3",
			Active:       false,
			Username:     "carol",
			PasswordHash: hashOf(t, "carolpass"),
		},
	}}
	roles := &stubRoleRepo{roles: map[string]*domain.Role{
		"r1": {ID: "r1", Active: true, Name: "administrator"},
	}}
	grants := &stubGrants{
		menus: []domain.Menu{
			{ID: "m3", Active: true, Name: "Settings", Order: 3, RoleIDs: []string{"r1"}},
			{ID: "m1", Active: true, Name: "Dashboard", Order: 1, RoleIDs: []string{"r1"}},
			{ID: "m2", Active: true, Name: "Catalog", Order: 2, RoleIDs: []string{"r1"}},
			{ID: "m4", Active: false, Name: "Hidden", Order: 0, RoleIDs: []string{"r1"}},
		},
		items: []domain.MenuItem{
			{ID: "i2", Active: true, Name: "Users", Order: 2, MenuID: "m1", RoleIDs: []string{"r1"}},
			{ID: "i1", Active: true, Name: "Home", Order: 1, MenuID: "m1", RoleIDs: []string{"r1"},
				Capabilities: domain.Capabilities{Read: true}},
			{ID: "i9", Active: true, Name: "OtherRole", Order: 1, MenuID: "m1", RoleIDs: []string{"r9"}},
		},
	}
	return users, roles, grants, &stubRecorder{}
}

func newSession(users ports.UserRepository, roles ports.RoleRepository, grants ports.RoleGrants, rec ports.AuditRecorder, throttle LoginThrottle) ports.SessionService {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	return NewSessionService(users, roles, grants, issuer, rec, throttle, zerolog.Nop())
}

func TestSessionService_Login_Success(t *testing.T) {
	users, roles, grants, rec := newFixture(t)
	svc := newSession(users, roles, grants, rec, nil)

	payload, err := svc.Login(context.Background(), ports.LoginInput{Username: "alice", Password: "s3cret"})
	if err != nil {
		t.Fatalf("login returned error: %v", err)
	}
	if payload.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if payload.UserID != "u1" || payload.Name != "Alice" || payload.LastName != "Smith" || payload.Username != "alice" {
		t.Fatalf("unexpected profile: %+v", payload)
	}
	if payload.Role == nil || payload.Role.ID != "r1" || payload.Role.Name != "administrator" {
		t.Fatalf("unexpected role: %+v", payload.Role)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(payload.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != "alice" {
		t.Fatalf("expected subject alice, got %v", claims["sub"])
	}
	authz, ok := claims["authorization"].(map[string]any)
	if !ok || authz["id"] != "u1" {
		t.Fatalf("expected authorization.id u1, got %v", claims["authorization"])
	}

	if len(rec.records) != 1 {
		t.Fatalf("expected 1 audit record, got %d", len(rec.records))
	}
	if !rec.records[0].Auth || rec.records[0].UserID != "u1" || rec.records[0].Username != "alice" {
		t.Fatalf("unexpected audit record: %+v", rec.records[0])
	}
}

func TestSessionService_Login_MenuOrdering(t *testing.T) {
	users, roles, grants, rec := newFixture(t)
	svc := newSession(users, roles, grants, rec, nil)

	payload, err := svc.Login(context.Background(), ports.LoginInput{Username: "alice", Password: "s3cret"})
	if err != nil {
		t.Fatalf("login returned error: %v", err)
	}

	// Menus with order keys [3,1,2] must come back as [1,2,3]; the inactive
	// menu never appears.
	if len(payload.RoleMenus) != 3 {
		t.Fatalf("expected 3 menus, got %d", len(payload.RoleMenus))
	}
	for i, want := range []string{"m1", "m2", "m3"} {
		if payload.RoleMenus[i].ID != want {
			t.Fatalf("menu %d: expected %s, got %s", i, want, payload.RoleMenus[i].ID)
		}
	}

	// Items of m1 ordered ascending, other-role item filtered out.
	items := payload.RoleMenus[0].Items
	if len(items) != 2 || items[0].ID != "i1" || items[1].ID != "i2" {
		t.Fatalf("unexpected item ordering: %+v", items)
	}
	if !items[0].Capabilities.Read {
		t.Fatalf("expected read capability on i1")
	}
}

func TestSessionService_Login_UnknownAndWrongPasswordCollapse(t *testing.T) {
	users, roles, grants, rec := newFixture(t)
	svc := newSession(users, roles, grants, rec, nil)

	ghost, err := svc.Login(context.Background(), ports.LoginInput{Username: "ghost", Password: "anything"})
	if err != nil {
		t.Fatalf("unknown user must not error: %v", err)
	}
	wrong, err := svc.Login(context.Background(), ports.LoginInput{Username: "alice", Password: "wrong"})
	if err != nil {
		t.Fatalf("wrong password must not error: %v", err)
	}

	if !reflect.DeepEqual(ghost, wrong) {
		t.Fatalf("failure payloads differ: %+v vs %+v", ghost, wrong)
	}
	if ghost.Token != "" || ghost.UserID != "" || ghost.Role != nil || ghost.RoleMenus != nil {
		t.Fatalf("failure payload not empty: %+v", ghost)
	}

	if len(rec.records) != 2 {
		t.Fatalf("expected 2 audit records, got %d", len(rec.records))
	}
	for _, r := range rec.records {
		if r.Auth {
			t.Fatalf("failed attempt recorded as authenticated: %+v", r)
		}
	}
	if rec.records[1].UserID != "u1" {
		t.Fatalf("wrong-password record should carry the user id, got %q", rec.records[1].UserID)
	}
}

func TestSessionService_Login_InactiveUserFails(t *testing.T) {
	users, roles, grants, rec := newFixture(t)
	svc := newSession(users, roles, grants, rec, nil)

	payload, err := svc.Login(context.Background(), ports.LoginInput{Username: "carol", Password: "carolpass"})
	if err != nil {
		t.Fatalf("inactive user must not error: %v", err)
	}
	if payload.Token != "" || payload.UserID != "" {
		t.Fatalf("inactive user got a session: %+v", payload)
	}
}

func TestSessionService_Login_RolelessUserEmptyTree(t *testing.T) {
	users, roles, grants, rec := newFixture(t)
	svc := newSession(users, roles, grants, rec, nil)

	payload, err := svc.Login(context.Background(), ports.LoginInput{Username: "bob", Password: "bobpass"})
	if err != nil {
		t.Fatalf("login returned error: %v", err)
	}
	if payload.Token == "" {
		t.Fatalf("expected token for roleless user")
	}
	if payload.Role != nil || len(payload.RoleMenus) != 0 {
		t.Fatalf("roleless user should have empty tree: %+v", payload)
	}
}

func TestSessionService_Login_StoreFailurePropagates(t *testing.T) {
	users, roles, grants, rec := newFixture(t)
	users.err = errors.New("connection reset")
	svc := newSession(users, roles, grants, rec, nil)

	if _, err := svc.Login(context.Background(), ports.LoginInput{Username: "alice", Password: "s3cret"}); err == nil {
		t.Fatalf("expected store failure to propagate")
	}
	if len(rec.records) != 0 {
		t.Fatalf("store failure is not an authentication outcome, got %d records", len(rec.records))
	}
}

func TestSessionService_Login_Throttled(t *testing.T) {
	users, roles, grants, rec := newFixture(t)
	svc := newSession(users, roles, grants, rec, &stubThrottle{allowed: false})

	_, err := svc.Login(context.Background(), ports.LoginInput{Username: "alice", Password: "s3cret"})
	if !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
	if len(rec.records) != 1 || rec.records[0].Auth {
		t.Fatalf("throttled attempt must still be audited: %+v", rec.records)
	}
}

func TestSessionService_Login_ThrottleErrorIsNonFatal(t *testing.T) {
	users, roles, grants, rec := newFixture(t)
	svc := newSession(users, roles, grants, rec, &stubThrottle{err: errors.New("redis down")})

	payload, err := svc.Login(context.Background(), ports.LoginInput{Username: "alice", Password: "s3cret"})
	if err != nil {
		t.Fatalf("throttle failure must not block login: %v", err)
	}
	if payload.Token == "" {
		t.Fatalf("expected token despite throttle failure")
	}
}

func TestSessionService_CurrentSession_Idempotent(t *testing.T) {
	users, roles, grants, rec := newFixture(t)
	svc := newSession(users, roles, grants, rec, nil)

	first, err := svc.CurrentSession(context.Background(), "u1")
	if err != nil {
		t.Fatalf("current session: %v", err)
	}
	second, err := svc.CurrentSession(context.Background(), "u1")
	if err != nil {
		t.Fatalf("current session: %v", err)
	}

	if first.Token != "" {
		t.Fatalf("session check must not mint a token")
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("payloads differ across calls: %+v vs %+v", first, second)
	}
	if len(first.RoleMenus) != 3 {
		t.Fatalf("expected full tree, got %d menus", len(first.RoleMenus))
	}
	if len(rec.records) != 0 {
		t.Fatalf("session checks are not login attempts, got %d audit records", len(rec.records))
	}
}

func TestSessionService_CurrentSession_UnknownOrInactive(t *testing.T) {
	users, roles, grants, rec := newFixture(t)
	svc := newSession(users, roles, grants, rec, nil)

	payload, err := svc.CurrentSession(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unknown id must not error: %v", err)
	}
	if payload.UserID != "" {
		t.Fatalf("expected empty payload, got %+v", payload)
	}

	payload, err = svc.CurrentSession(context.Background(), "u3")
	if err != nil {
		t.Fatalf("inactive user must not error: %v", err)
	}
	if payload.UserID != "" {
		t.Fatalf("deactivated user still has a session: %+v", payload)
	}
}
