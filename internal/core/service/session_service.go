package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/backoffice/admin-api/internal/api/metrics"
	"github.com/backoffice/admin-api/internal/core/domain"
	"github.com/backoffice/admin-api/internal/core/ports"
)

// LoginThrottle abstracts the attempt limiter (Redis). Allow reports whether
// another attempt for this username/ip pair may proceed.
type LoginThrottle interface {
	Allow(ctx context.Context, username, ip string) (bool, error)
}

type sessionService struct {
	users    ports.UserRepository
	roles    ports.RoleRepository
	grants   ports.RoleGrants
	issuer   *TokenIssuer
	audit    ports.AuditRecorder
	throttle LoginThrottle // nil disables throttling
	log      zerolog.Logger
}

// NewSessionService wires the login and session-check flows. throttle may be
// nil when no limiter is configured.
func NewSessionService(
	users ports.UserRepository,
	roles ports.RoleRepository,
	grants ports.RoleGrants,
	issuer *TokenIssuer,
	audit ports.AuditRecorder,
	throttle LoginThrottle,
	log zerolog.Logger,
) ports.SessionService {
	return &sessionService{
		users:    users,
		roles:    roles,
		grants:   grants,
		issuer:   issuer,
		audit:    audit,
		throttle: throttle,
		log:      log,
	}
}

// Login runs one authentication attempt end to end. Unknown username and
// wrong password both collapse to an empty payload with a nil error; only
// infrastructure failures surface as errors. Every attempt, whatever its
// outcome, is handed to the audit recorder before the response is returned.
func (s *sessionService) Login(ctx context.Context, in ports.LoginInput) (*ports.SessionPayload, error) {
	started := time.Now()

	if s.throttle != nil {
		allowed, err := s.throttle.Allow(ctx, in.Username, in.Metadata.IP)
		if err != nil {
			s.log.Warn().Err(err).Str("username", in.Username).Msg("throttle check failed, allowing attempt")
		} else if !allowed {
			metrics.LoginAttemptsTotal.WithLabelValues(metrics.LoginThrottled).Inc()
			s.audit.Record(domain.AuditLogin{
				Username:  in.Username,
				Metadata:  in.Metadata,
				Auth:      false,
				CreatedAt: time.Now().UTC(),
			})
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindActiveByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginAttemptsTotal.WithLabelValues(metrics.LoginUserNotFound).Inc()
			s.audit.Record(domain.AuditLogin{
				Username:  in.Username,
				Metadata:  in.Metadata,
				Auth:      false,
				CreatedAt: time.Now().UTC(),
			})
			return &ports.SessionPayload{}, nil
		}
		return nil, fmt.Errorf("login: lookup user: %w", err)
	}

	verified := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) == nil

	s.audit.Record(domain.AuditLogin{
		UserID:    user.ID,
		Username:  in.Username,
		Metadata:  in.Metadata,
		Auth:      verified,
		CreatedAt: time.Now().UTC(),
	})

	if !verified {
		metrics.LoginAttemptsTotal.WithLabelValues(metrics.LoginInvalidCredentials).Inc()
		return &ports.SessionPayload{}, nil
	}

	payload, err := s.assemble(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.issuer.Issue(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("login: sign token: %w", err)
	}
	payload.Token = token

	metrics.LoginAttemptsTotal.WithLabelValues(metrics.LoginSuccess).Inc()
	metrics.SessionBuildDuration.Observe(time.Since(started).Seconds())

	s.log.Info().
		Str("user_id", user.ID).
		Str("username", user.Username).
		Msg("login succeeded")

	return payload, nil
}

// CurrentSession re-derives the payload for an already-authenticated caller.
// The permission tree is rebuilt from the store on every call; no token is
// minted. A vanished or deactivated user yields an empty payload.
func (s *sessionService) CurrentSession(ctx context.Context, userID string) (*ports.SessionPayload, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return &ports.SessionPayload{}, nil
		}
		return nil, fmt.Errorf("current session: lookup user: %w", err)
	}
	if !user.Active {
		return &ports.SessionPayload{}, nil
	}
	return s.assemble(ctx, user)
}

// assemble composes profile, role, and the role's permission tree. A user
// without a role, or whose role id no longer resolves, gets a payload with no
// role and no menus rather than an error.
func (s *sessionService) assemble(ctx context.Context, user *domain.User) (*ports.SessionPayload, error) {
	payload := &ports.SessionPayload{
		UserID:       user.ID,
		Name:         user.Name,
		LastName:     user.LastName,
		Username:     user.Username,
		ProfilePhoto: user.ProfilePhoto,
	}

	if user.RoleID == "" {
		return payload, nil
	}

	role, err := s.roles.FindByID(ctx, user.RoleID)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return payload, nil
		}
		return nil, fmt.Errorf("assemble session: lookup role: %w", err)
	}
	payload.Role = &ports.RoleSummary{ID: role.ID, Name: role.Name}

	menus, err := s.grants.MenusForRole(ctx, role.ID)
	if err != nil {
		return nil, fmt.Errorf("assemble session: menus for role: %w", err)
	}

	payload.RoleMenus = make([]ports.SessionMenu, 0, len(menus))
	for _, menu := range menus {
		items, err := s.grants.MenuItemsForRole(ctx, menu.ID, role.ID)
		if err != nil {
			return nil, fmt.Errorf("assemble session: items for menu %s: %w", menu.ID, err)
		}

		sm := ports.SessionMenu{
			ID:    menu.ID,
			Name:  menu.Name,
			Icon:  menu.Icon,
			Order: menu.Order,
			Items: make([]ports.SessionMenuItem, 0, len(items)),
		}
		for _, item := range items {
			sm.Items = append(sm.Items, ports.SessionMenuItem{
				ID:           item.ID,
				Name:         item.Name,
				Icon:         item.Icon,
				Order:        item.Order,
				ModuleID:     item.ModuleID,
				Capabilities: item.Capabilities,
			})
		}
		payload.RoleMenus = append(payload.RoleMenus, sm)
	}

	return payload, nil
}
