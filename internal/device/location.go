package device

import (
	"strings"

	"fixitfast_technician/platform/config"
)

// LocationProvider yields the current position as a "lat,lng" string.
// Providers never fail: when no live position is available they fall back
// to a configured default so distance annotation keeps working.
type LocationProvider interface {
	Position() string
	Latitude() string
	Longitude() string
}

// DefaultLocation always reports the configured fallback position.
type DefaultLocation struct {
	position string
}

// NewDefaultLocation creates a provider pinned to the configured fallback.
func NewDefaultLocation(cfg config.LocationConfig) *DefaultLocation {
	return &DefaultLocation{position: cfg.GetDefaultPosition()}
}

// Position returns the "lat,lng" pair.
func (l *DefaultLocation) Position() string { return l.position }

// Latitude returns the latitude half of the position.
func (l *DefaultLocation) Latitude() string {
	lat, _ := splitPosition(l.position)
	return lat
}

// Longitude returns the longitude half of the position.
func (l *DefaultLocation) Longitude() string {
	_, lng := splitPosition(l.position)
	return lng
}

func splitPosition(position string) (lat, lng string) {
	parts := strings.SplitN(position, ",", 2)
	if len(parts) != 2 {
		return "", ""
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}
