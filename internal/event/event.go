package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Type names a round event
type Type string

// Event is one message on the bus. RoundID is set on every round event so
// subscribers and the dead-letter file can correlate without decoding.
type Event struct {
	Version string      `json:"version"`
	Type    Type        `json:"type"`
	RoundID string      `json:"round_id,omitempty"`
	Payload interface{} `json:"payload"`
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Publisher publishes events
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Bus is a Publisher that subscribers can attach to
type Bus interface {
	Publisher
	Subscribe(eventType Type, handler Handler)
}

// HandlerLister exposes the subscribers of an event type so a failed
// delivery can be retried against the failing handler alone
type HandlerLister interface {
	Handlers(eventType Type) []Handler
}

// MemoryBus delivers events in-process
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish calls every subscriber of the event type in subscription order.
// All handlers run even when one fails; the failures are joined.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	var errs []error
	for _, handler := range b.Handlers(event.Type) {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%s: %s (%d): %w", ErrContextHandlers, event.Type, len(errs), errors.Join(errs...))
}

// Subscribe adds a handler for eventType
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Handlers returns a copy of the handlers subscribed to eventType
func (b *MemoryBus) Handlers(eventType Type) []Handler {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]Handler(nil), b.handlers[eventType]...)
}

// HandlerCount reports how many handlers listen for eventType
func (b *MemoryBus) HandlerCount(eventType Type) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType])
}
