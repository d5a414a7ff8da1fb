package events_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"repodash/internal/domain/events"
)

type testEvent struct {
	events.BaseEvent
}

func newTestEvent(eventType string) *testEvent {
	return &testEvent{BaseEvent: events.NewBaseEvent(eventType, "aggregate-1")}
}

func TestNewBaseEvent(t *testing.T) {
	e := events.NewBaseEvent("thing.happened", "agg")
	if e.EventID() == "" {
		t.Error("EventID() should not be empty")
	}
	if e.EventType() != "thing.happened" || e.AggregateID() != "agg" {
		t.Errorf("EventType/AggregateID = %s/%s", e.EventType(), e.AggregateID())
	}
	if e.OccurredAt().IsZero() {
		t.Error("OccurredAt() should be set")
	}
	if other := events.NewBaseEvent("thing.happened", "agg"); other.EventID() == e.EventID() {
		t.Error("event IDs should be unique")
	}
}

func TestNewBaseEventAt(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.FixedZone("CET", 3600))
	e := events.NewBaseEventAt("thing.happened", "agg", at)
	if !e.OccurredAt().Equal(at) || e.OccurredAt().Location() != time.UTC {
		t.Errorf("OccurredAt() = %v, want %v in UTC", e.OccurredAt(), at)
	}
}

func TestDispatcher_Dispatch(t *testing.T) {
	d := events.NewDispatcher()

	var a, b, other atomic.Int32
	d.Register(func(ctx context.Context, e events.DomainEvent) error {
		a.Add(1)
		return nil
	}, "x.created", "x.deleted")
	d.Register(func(ctx context.Context, e events.DomainEvent) error {
		b.Add(1)
		return nil
	}, "x.created")
	d.Register(func(ctx context.Context, e events.DomainEvent) error {
		other.Add(1)
		return nil
	}, "y.created")

	if err := d.Dispatch(context.Background(), newTestEvent("x.created")); err != nil {
		t.Fatalf("Dispatch() error: %v", err)
	}
	if err := d.Dispatch(context.Background(), newTestEvent("x.deleted")); err != nil {
		t.Fatalf("Dispatch() error: %v", err)
	}

	if a.Load() != 2 || b.Load() != 1 || other.Load() != 0 {
		t.Errorf("handler calls a=%d b=%d other=%d, want 2/1/0", a.Load(), b.Load(), other.Load())
	}
}

func TestDispatcher_NoHandlers(t *testing.T) {
	d := events.NewDispatcher()
	if err := d.Dispatch(context.Background(), newTestEvent("nobody.listens")); err != nil {
		t.Errorf("Dispatch() without handlers error: %v", err)
	}
}

func TestDispatcher_CollectsErrors(t *testing.T) {
	d := events.NewDispatcher()
	errBoom := errors.New("boom")

	var ran atomic.Int32
	d.Register(func(ctx context.Context, e events.DomainEvent) error {
		ran.Add(1)
		return errBoom
	}, "x.created")
	d.Register(func(ctx context.Context, e events.DomainEvent) error {
		ran.Add(1)
		return nil
	}, "x.created")

	err := d.Dispatch(context.Background(), newTestEvent("x.created"))
	if !errors.Is(err, errBoom) {
		t.Errorf("Dispatch() error = %v, want it to wrap boom", err)
	}
	if ran.Load() != 2 {
		t.Errorf("handlers run = %d, want 2 (a failing handler must not stop the others)", ran.Load())
	}
}

func TestDispatcher_RecoversPanics(t *testing.T) {
	d := events.NewDispatcher()
	d.Register(func(ctx context.Context, e events.DomainEvent) error {
		panic("handler bug")
	}, "x.created")

	if err := d.Dispatch(context.Background(), newTestEvent("x.created")); err == nil {
		t.Error("Dispatch() should report a panicking handler as an error")
	}
}
