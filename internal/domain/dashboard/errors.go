package dashboard

import (
	"errors"
	"fmt"
)

// CodeSessionNotFound is returned for unknown or expired sessions
const CodeSessionNotFound = "SESSION_NOT_FOUND"

// SessionError is the dashboard counterpart of repo.DomainError
type SessionError struct {
	Code    string
	Message string
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func ErrSessionNotFound(id string) *SessionError {
	return &SessionError{
		Code:    CodeSessionNotFound,
		Message: fmt.Sprintf("dashboard session %s not found", id),
	}
}

// IsNotFound reports whether err means the session does not exist
func IsNotFound(err error) bool {
	var se *SessionError
	return errors.As(err, &se) && se.Code == CodeSessionNotFound
}

// errFetchAborted is applied when a fetch returns without reporting a result
var errFetchAborted = errors.New("fetch aborted before completion")
