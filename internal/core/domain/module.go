package domain

import "time"

// Module is an application area a menu item links to (users, products, ...).
type Module struct {
	ID          string    `json:"id"`
	Active      bool      `json:"active"`
	Version     int       `json:"version"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	CreatedByID string    `json:"created_by_id,omitempty"`
	UpdatedByID string    `json:"updated_by_id,omitempty"`
	Name        string    `json:"name"`
	Path        string    `json:"path,omitempty"`
}
