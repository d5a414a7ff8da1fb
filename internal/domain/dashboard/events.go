package dashboard

import (
	"time"

	"repodash/internal/domain/events"
)

// Event types
const (
	EventTypeViewChanged   = "dashboard.view_changed"
	EventTypeSessionClosed = "dashboard.session_closed"
)

// Reasons attached to ViewChangedEvent
const (
	ReasonSessionCreated = "session_created"
	ReasonFetchStarted   = "fetch_started"
	ReasonFetchCompleted = "fetch_completed"
	ReasonInputRejected  = "input_rejected"
	ReasonSearchChanged  = "search_changed"
	ReasonPageChanged    = "page_changed"
)

// ViewChangedEvent is raised whenever the derived view of a session may have changed
type ViewChangedEvent struct {
	events.BaseEvent
	SessionID string
	Reason    string
}

// NewViewChangedEvent creates a new ViewChangedEvent
func NewViewChangedEvent(sessionID, reason string, at time.Time) *ViewChangedEvent {
	return &ViewChangedEvent{
		BaseEvent: events.NewBaseEventAt(EventTypeViewChanged, sessionID, at),
		SessionID: sessionID,
		Reason:    reason,
	}
}

// SessionClosedEvent is raised when a session is closed or expires
type SessionClosedEvent struct {
	events.BaseEvent
	SessionID string
}

// NewSessionClosedEvent creates a new SessionClosedEvent
func NewSessionClosedEvent(sessionID string, at time.Time) *SessionClosedEvent {
	return &SessionClosedEvent{
		BaseEvent: events.NewBaseEventAt(EventTypeSessionClosed, sessionID, at),
		SessionID: sessionID,
	}
}
