// Package incidents fetches and caches service incidents from the mobile
// backend and serves cheap in-memory re-filtering by status.
package incidents

import (
	"strings"
	"time"
)

// Status tokens returned by the backend. Unrecognized values pass through
// untouched.
const (
	StatusNew        = "New"
	StatusInProgress = "InProgress"
	StatusComplete   = "Complete"
)

// Incident is a reported service request. Instances are constructed from a
// JSON record at fetch time and never mutated by the repository; the status
// update round trip deliberately leaves local state untouched.
type Incident struct {
	ID              int
	Title           string
	Status          string
	Priority        string
	CreatedOn       time.Time
	CreatedOnText   string
	CustomerName    string
	Street          string
	City            string
	PostalCode      string
	RemoteImageLink string
	DrivingTime     string
	Notes           []NoteItem
}

// PriorityImageKey returns the icon resource for the incident's priority.
// Completed incidents always show the no-priority icon.
func (i *Incident) PriorityImageKey() string {
	if strings.EqualFold(i.Status, StatusComplete) {
		return "pri4.png"
	}
	switch {
	case strings.EqualFold(i.Priority, "High"):
		return "pri1.png"
	case strings.EqualFold(i.Priority, "Medium"):
		return "pri2.png"
	case strings.EqualFold(i.Priority, "Low"):
		return "pri3.png"
	default:
		return "pri4.png"
	}
}

// createdOnLayouts are tried in order against the backend's createdon
// value, which appears both with and without seconds and zone.
var createdOnLayouts = []string{
	"2006-01-02 15:04:05 MST",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// parseCreatedOn parses the backend timestamp, degrading to the zero time
// when no layout matches. The raw text is kept alongside either way.
func parseCreatedOn(value string) time.Time {
	value = strings.TrimSpace(value)
	for _, layout := range createdOnLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	// Values with trailing text past the minute field still carry a
	// usable prefix.
	if len(value) >= 16 {
		if t, err := time.Parse("2006-01-02 15:04", value[:16]); err == nil {
			return t
		}
	}
	return time.Time{}
}
