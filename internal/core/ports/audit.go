package ports

import (
	"context"

	"github.com/backoffice/admin-api/internal/core/domain"
)

// AuditLoginRepository persists immutable login-attempt records.
type AuditLoginRepository interface {
	Insert(ctx context.Context, rec *domain.AuditLogin) error
	List(ctx context.Context, filter ListFilter) ([]*domain.AuditLogin, int64, error)
}

// AuditRecorder accepts a login-attempt record for asynchronous persistence.
// Record must never block the login flow and never fail it: a full queue or a
// failed write is the recorder's problem, not the caller's.
type AuditRecorder interface {
	Record(rec domain.AuditLogin)
}
