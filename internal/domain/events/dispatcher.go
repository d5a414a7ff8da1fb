package events

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// EventHandler is a function that handles a domain event
type EventHandler func(ctx context.Context, event DomainEvent) error

// Publisher is the narrow interface services depend on
type Publisher interface {
	Dispatch(ctx context.Context, event DomainEvent) error
}

// Dispatcher fans domain events out to registered handlers
type Dispatcher struct {
	handlers map[string][]EventHandler
	mu       sync.RWMutex
}

// NewDispatcher creates a new event dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string][]EventHandler),
	}
}

// Register registers an event handler for one or more event types
func (d *Dispatcher) Register(handler EventHandler, eventTypes ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, eventType := range eventTypes {
		d.handlers[eventType] = append(d.handlers[eventType], handler)
	}
}

// Dispatch runs every handler for the event concurrently and waits for all of them.
// A panicking handler is reported as an error instead of taking the process down.
func (d *Dispatcher) Dispatch(ctx context.Context, event DomainEvent) error {
	d.mu.RLock()
	handlers := append([]EventHandler(nil), d.handlers[event.EventType()]...)
	d.mu.RUnlock()

	if len(handlers) == 0 {
		return nil
	}

	var wg sync.WaitGroup
	errs := make([]error, len(handlers))

	for i, handler := range handlers {
		wg.Add(1)
		go func(i int, h EventHandler) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					errs[i] = fmt.Errorf("handler panic: %v", r)
				}
			}()
			errs[i] = h(ctx, event)
		}(i, handler)
	}

	wg.Wait()

	err := errors.Join(errs...)
	if err != nil {
		log.Warn().
			Err(err).
			Str("event_type", event.EventType()).
			Str("event_id", event.EventID()).
			Msg("event handlers failed")
		return fmt.Errorf("dispatching %s: %w", event.EventType(), err)
	}

	return nil
}
