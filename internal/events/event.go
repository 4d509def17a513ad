// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"fixitfast_technician/platform/events"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Push Domain Events
// =============================================================================

// IncidentNotificationReceived is published when an incoming push payload
// announces a new or updated incident. Subscribers typically refresh the
// incident list and surface the alert text.
type IncidentNotificationReceived struct {
	BaseEvent
	IncidentID string `json:"incidentId"`
	Title      string `json:"title"`
	Message    string `json:"message"`
}

func (e IncidentNotificationReceived) EventName() string { return "push.incident.notification" }

// TokenRegistered is published after a device token registration attempt
// has completed against the backend.
type TokenRegistered struct {
	BaseEvent
	Provider string `json:"provider"`
	Status   int    `json:"status"`
}

func (e TokenRegistered) EventName() string { return "push.token.registered" }

// =============================================================================
// Incident Domain Events
// =============================================================================

// IncidentStatusChanged is published after a successful status update
// round trip against the backend.
type IncidentStatusChanged struct {
	BaseEvent
	IncidentID string `json:"incidentId"`
	Status     string `json:"status"`
}

func (e IncidentStatusChanged) EventName() string { return "incidents.status.changed" }
