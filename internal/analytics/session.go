// Package analytics batches custom application events with system and
// session framing and delivers them to the backend without blocking the
// caller.
package analytics

import (
	"time"

	"github.com/google/uuid"
)

// Session is a bounded collection window for custom usage events. A session
// id is freshly generated per session and never reused across flushes.
type Session struct {
	ID        string
	StartTime time.Time
	EndTime   time.Time
}

// NewSession creates a session starting now.
func NewSession() *Session {
	return &Session{
		ID:        uuid.NewString(),
		StartTime: time.Now(),
	}
}

// End stamps the session end time. Called exactly once, at flush.
func (s *Session) End() {
	s.EndTime = time.Now()
}

// Event is one custom application event awaiting upload. The session id is
// bound at enqueue time and re-stamped at flush so an event always ships
// under the session that flushes it.
type Event struct {
	Name       string
	Timestamp  time.Time
	SessionID  string
	Properties map[string]string
}

// NewEvent creates an event timestamped now.
func NewEvent(name string, properties map[string]string) Event {
	return Event{
		Name:       name,
		Timestamp:  time.Now(),
		Properties: properties,
	}
}
