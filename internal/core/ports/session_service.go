package ports

import (
	"context"

	"github.com/backoffice/admin-api/internal/core/domain"
)

// LoginInput carries a credential pair plus the request metadata recorded with
// the attempt.
type LoginInput struct {
	Username string
	Password string
	Metadata domain.RequestMetadata
}

// RoleSummary is the role slice exposed in a session payload.
type RoleSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SessionMenuItem is one visible menu entry with its capability flags.
type SessionMenuItem struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Icon         string              `json:"icon,omitempty"`
	Order        int                 `json:"order"`
	ModuleID     string              `json:"moduleId,omitempty"`
	Capabilities domain.Capabilities `json:"capabilities"`
}

// SessionMenu is one visible menu with its ordered items.
type SessionMenu struct {
	ID    string            `json:"id"`
	Name  string            `json:"name"`
	Icon  string            `json:"icon,omitempty"`
	Order int               `json:"order"`
	Items []SessionMenuItem `json:"items"`
}

// SessionPayload is the composed response to a login or session check. A
// failed login collapses to the zero value: no token, no profile, no role, no
// menus. Callers cannot tell an unknown username from a wrong password by the
// payload shape.
type SessionPayload struct {
	Token        string        `json:"token,omitempty"`
	UserID       string        `json:"userId,omitempty"`
	Name         string        `json:"name,omitempty"`
	LastName     string        `json:"lastName,omitempty"`
	Username     string        `json:"username,omitempty"`
	ProfilePhoto string        `json:"profilePhoto,omitempty"`
	Role         *RoleSummary  `json:"role,omitempty"`
	RoleMenus    []SessionMenu `json:"roleMenus,omitempty"`
}

// SessionService implements the login and session-check flows.
type SessionService interface {
	Login(ctx context.Context, in LoginInput) (*SessionPayload, error)
	CurrentSession(ctx context.Context, userID string) (*SessionPayload, error)
}
