package events

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is anything the dispatcher can route: a typed fact about one aggregate
// (an account fetch, a dashboard session).
type DomainEvent interface {
	EventID() string
	EventType() string
	OccurredAt() time.Time
	AggregateID() string
}

// BaseEvent is embedded by concrete events to satisfy DomainEvent
type BaseEvent struct {
	id          uuid.UUID
	eventType   string
	aggregateID string
	at          time.Time
}

// NewBaseEvent stamps an event with a fresh ID and the current time
func NewBaseEvent(eventType, aggregateID string) BaseEvent {
	return NewBaseEventAt(eventType, aggregateID, time.Now())
}

// NewBaseEventAt is NewBaseEvent for callers that own a clock. The time is stored in UTC.
func NewBaseEventAt(eventType, aggregateID string, at time.Time) BaseEvent {
	return BaseEvent{
		id:          uuid.New(),
		eventType:   eventType,
		aggregateID: aggregateID,
		at:          at.UTC(),
	}
}

func (e BaseEvent) EventID() string       { return e.id.String() }
func (e BaseEvent) EventType() string     { return e.eventType }
func (e BaseEvent) OccurredAt() time.Time { return e.at }
func (e BaseEvent) AggregateID() string   { return e.aggregateID }
