package domain

import "time"

// RequestMetadata is the opaque client context captured with a login attempt.
// The values come straight from the transport boundary.
type RequestMetadata struct {
	IP        string `json:"ip,omitempty"`
	Geo       string `json:"geo,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
	Language  string `json:"language,omitempty"`
}

// AuditLogin is one immutable record of a login attempt. Auth reports the
// verification outcome; UserID is empty when no active user matched.
type AuditLogin struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id,omitempty"`
	Username  string          `json:"username"`
	Metadata  RequestMetadata `json:"metadata"`
	Auth      bool            `json:"auth"`
	CreatedAt time.Time       `json:"created_at"`
}
