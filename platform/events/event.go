// Package events carries typed in-process events between the client's
// modules: incoming push notifications fan out to the incident views, and
// completed backend round trips announce themselves to interested parties.
// It replaces string-keyed shared-scope lookups with explicit pub/sub.
package events

import (
	"context"
	"time"
)

// Event is implemented by every published event type.
type Event interface {
	// EventName identifies the event type; subscribers key on it.
	EventName() string
	OccurredAt() time.Time
}

// BaseEvent carries the timestamp every event shares. Embed it and supply
// EventName on the concrete type.
type BaseEvent struct {
	Timestamp time.Time `json:"timestamp"`
}

func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// NewBaseEvent stamps a base event with the current time.
func NewBaseEvent() BaseEvent {
	return BaseEvent{Timestamp: time.Now()}
}

// Handler consumes events of one type.
type Handler interface {
	Handle(ctx context.Context, event Event) error
}

// HandlerFunc adapts a plain function into a Handler.
type HandlerFunc func(ctx context.Context, event Event) error

func (f HandlerFunc) Handle(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// Bus routes events to subscribed handlers.
type Bus interface {
	// Publish delivers an event asynchronously. Processing a backend
	// response never blocks on its subscribers.
	Publish(ctx context.Context, event Event)

	// PublishSync delivers an event and waits for every handler,
	// collecting their errors. Incoming push notifications use this so
	// delivery order matches arrival order.
	PublishSync(ctx context.Context, event Event) error

	// Subscribe registers a handler under the name the event type
	// returns from EventName.
	Subscribe(eventName string, handler Handler)
}
