package dashboard

import (
	"context"
	"time"
)

// SessionRepo defines the interface for session storage
type SessionRepo interface {
	// Save stores a session (create or replace)
	Save(ctx context.Context, session *Session) error

	// FindByID retrieves a session; unknown IDs yield ErrSessionNotFound
	FindByID(ctx context.Context, id SessionID) (*Session, error)

	// Delete removes a session
	Delete(ctx context.Context, id SessionID) error

	// DeleteIdle removes sessions untouched since cutoff and returns them
	DeleteIdle(ctx context.Context, cutoff time.Time) ([]*Session, error)

	// Count returns the number of live sessions
	Count(ctx context.Context) (int, error)
}
