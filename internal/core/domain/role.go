package domain

import "time"

// Role is a named permission group. Menu visibility is not stored on the role
// itself: menus and menu items each carry the set of role ids allowed to see
// them, and the grants are resolved through the RoleGrants port.
type Role struct {
	ID          string    `json:"id"`
	Active      bool      `json:"active"`
	Version     int       `json:"version"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	CreatedByID string    `json:"created_by_id,omitempty"`
	UpdatedByID string    `json:"updated_by_id,omitempty"`
	Name        string    `json:"name"`
}
