package repo

import (
	"repodash/internal/domain/events"
)

// Event types
const (
	EventTypeRepositoriesFetched = "repository.fetched"
	EventTypeFetchFailed         = "repository.fetch_failed"
)

// RepositoriesFetchedEvent is raised after a successful fetch for an account
type RepositoriesFetchedEvent struct {
	events.BaseEvent
	Account       string
	FetchedCount  int
	OriginalCount int
}

// NewRepositoriesFetchedEvent creates a new RepositoriesFetchedEvent
func NewRepositoriesFetchedEvent(account string, fetched, originals int) *RepositoriesFetchedEvent {
	return &RepositoriesFetchedEvent{
		BaseEvent:     events.NewBaseEvent(EventTypeRepositoriesFetched, account),
		Account:       account,
		FetchedCount:  fetched,
		OriginalCount: originals,
	}
}

// FetchFailedEvent is raised when the remote API call for an account fails
type FetchFailedEvent struct {
	events.BaseEvent
	Account string
	Code    string
	Message string
}

// NewFetchFailedEvent creates a new FetchFailedEvent
func NewFetchFailedEvent(account string, err *DomainError) *FetchFailedEvent {
	return &FetchFailedEvent{
		BaseEvent: events.NewBaseEvent(EventTypeFetchFailed, account),
		Account:   account,
		Code:      err.Code,
		Message:   err.Message,
	}
}
