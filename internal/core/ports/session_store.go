package ports

import (
	"context"
	"time"

	"gescom/internal/core/domain/model/position"
)

// Session is the explicit per-user context carried through operations in
// place of the ambient login the source UI kept in browser storage. The
// role is declarative (see position.Role); no server-side enforcement is
// built on it.
type Session struct {
	Token    string
	StaffID  int64
	Login    string
	Role     position.Role
	IssuedAt time.Time
}

// SessionStore persists sessions with a bounded lifetime.
type SessionStore interface {
	// Save stores the session under its token for the given TTL.
	Save(ctx context.Context, session Session, ttl time.Duration) error

	// Get retrieves a session by token; errs.ErrObjectNotFound when the
	// token is unknown or expired.
	Get(ctx context.Context, token string) (Session, error)

	// Delete drops a session (logout).
	Delete(ctx context.Context, token string) error
}
