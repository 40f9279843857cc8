package domain

import "time"

// User models an administrable account. The password hash is write-only from
// the API's perspective: it is excluded from JSON and never copied into a
// session payload.
type User struct {
	ID             string     `json:"id"`
	Active         bool       `json:"active"`
	Version        int        `json:"version"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	CreatedByID    string     `json:"created_by_id,omitempty"`
	UpdatedByID    string     `json:"updated_by_id,omitempty"`
	Name           string     `json:"name,omitempty"`
	LastName       string     `json:"last_name,omitempty"`
	Username       string     `json:"username"`
	PasswordHash   string     `json:"-"`
	DocumentNumber string     `json:"document_number,omitempty"`
	Birthdate      *time.Time `json:"birthdate,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	Email          string     `json:"email,omitempty"`
	ProfilePhoto   string     `json:"profile_photo,omitempty"`
	RoleID         string     `json:"role_id,omitempty"`
}
