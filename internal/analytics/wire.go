package analytics

import (
	"encoding/json"
	"strconv"
	"time"

	"fixitfast_technician/internal/device"
)

// wireEvent is the shape the analytics endpoint expects for every entry of
// the uploaded array, system and custom events alike.
type wireEvent struct {
	Name       string            `json:"name"`
	Type       string            `json:"type"`
	Timestamp  string            `json:"timestamp"`
	SessionID  string            `json:"sessionID,omitempty"`
	Component  string            `json:"component,omitempty"`
	Properties map[string]string `json:"properties,omitempty"`
}

// marshalBatch frames a batch as the endpoint's JSON array: one context
// event, one sessionStart, the custom events in enqueue order, one
// sessionEnd.
func marshalBatch(b batch, info device.Info, location device.LocationProvider, component string) ([]byte, error) {
	out := make([]wireEvent, 0, len(b.events)+3)

	out = append(out, contextEvent(b.session.ID, info, location))
	out = append(out, wireEvent{
		Name:      "sessionStart",
		Type:      "system",
		Timestamp: isoTimestamp(b.session.StartTime),
		SessionID: b.session.ID,
		Component: component,
	})
	for _, event := range b.events {
		out = append(out, wireEvent{
			Name:       event.Name,
			Type:       "custom",
			Timestamp:  isoTimestamp(event.Timestamp),
			SessionID:  event.SessionID,
			Component:  component,
			Properties: event.Properties,
		})
	}
	out = append(out, wireEvent{
		Name:      "sessionEnd",
		Type:      "system",
		Timestamp: isoTimestamp(b.session.EndTime),
		SessionID: b.session.ID,
		Component: component,
	})

	return json.Marshal(out)
}

func contextEvent(sessionID string, info device.Info, location device.LocationProvider) wireEvent {
	properties := map[string]string{
		"model":        info.Model(),
		"manufacturer": info.Manufacturer(),
		"osName":       info.OSName(),
		"osVersion":    info.OSVersion(),
		"timezone":     strconv.Itoa(info.TimezoneOffsetSeconds()),
	}
	if location != nil {
		properties["latitude"] = location.Latitude()
		properties["longitude"] = location.Longitude()
	}
	return wireEvent{
		Name:       "context",
		Type:       "system",
		Timestamp:  isoTimestamp(time.Now()),
		SessionID:  sessionID,
		Properties: properties,
	}
}

func isoTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
