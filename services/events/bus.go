// Package events provides an in-process publish/subscribe bus. The bus is
// an explicit instance passed by reference to whichever component needs to
// react to data changes; there is no process-wide registry.
package events

import (
	"sync"
	"time"
)

// Event types emitted by the booking engine.
const (
	TypeBookingCreated      = "booking.created"
	TypeBookingConfirmed    = "booking.confirmed"
	TypeBookingRejected     = "booking.rejected"
	TypeBookingCancelled    = "booking.cancelled"
	TypeBookingCompleted    = "booking.completed"
	TypeAvailabilityChanged = "availability.changed"
)

// Event is a lightweight domain event.
type Event struct {
	Type       string
	BookingID  string
	ProviderID string
	CreatedAt  time.Time
}

// Handler reacts to an event.
type Handler func(event Event)

// Subscription identifies a registered handler for later removal.
type Subscription struct {
	eventType string
	id        int
}

// Bus provides in-process pub/sub with explicit subscribe/unsubscribe
// lifecycle.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string]map[int]Handler
	nextID   int
}

// NewBus constructs an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[string]map[int]Handler)}
}

// Subscribe registers a handler for an event type and returns the
// subscription used to remove it.
func (b *Bus) Subscribe(eventType string, handler Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.handlers[eventType] == nil {
		b.handlers[eventType] = make(map[int]Handler)
	}
	b.nextID++
	b.handlers[eventType][b.nextID] = handler
	return Subscription{eventType: eventType, id: b.nextID}
}

// Unsubscribe removes a previously registered handler.
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.handlers[sub.eventType], sub.id)
}

// Publish notifies subscribers of the event type. Handlers run
// synchronously; the caller decides the concurrency model.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.handlers[event.Type]))
	for _, h := range b.handlers[event.Type] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	for _, handler := range handlers {
		handler(event)
	}
}
