package dashboard

import (
	"fmt"

	"github.com/google/uuid"
)

// SessionID is a value object representing a dashboard session's unique identifier
type SessionID struct {
	value uuid.UUID
}

// NewSessionID creates a new SessionID
func NewSessionID() SessionID {
	return SessionID{value: uuid.New()}
}

// ParseSessionID parses a string into a SessionID
func ParseSessionID(id string) (SessionID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return SessionID{}, fmt.Errorf("invalid session ID format: %w", err)
	}
	return SessionID{value: uid}, nil
}

func (id SessionID) String() string {
	return id.value.String()
}
