package push

import (
	"context"
	"encoding/json"
	"strings"

	"fixitfast_technician/internal/events"
	"fixitfast_technician/platform/apperr"
	"fixitfast_technician/platform/logger"
)

// Notification is the normalized form of an incoming push payload.
type Notification struct {
	IncidentID string `json:"incidentId"`
	Title      string `json:"title"`
	Message    string `json:"message"`
}

// Normalize extracts the alert triple from a raw push payload. The two
// platforms wrap the alert differently: iOS delivers it as a string-encoded
// JSON value, Android as a structured object. A missing incidentId is
// tolerated; the notification is still delivered with an empty id.
func Normalize(payload []byte, platform string, log *logger.Logger) (Notification, error) {
	var note Notification

	if strings.EqualFold(platform, "ios") {
		var envelope struct {
			Alert string `json:"alert"`
		}
		if err := json.Unmarshal(payload, &envelope); err != nil {
			return note, apperr.Wrap(apperr.KindValidation, "malformed push payload", err)
		}
		if err := json.Unmarshal([]byte(envelope.Alert), &note); err != nil {
			return note, apperr.Wrap(apperr.KindValidation, "malformed push alert", err)
		}
	} else {
		var envelope struct {
			Alert Notification `json:"alert"`
		}
		if err := json.Unmarshal(payload, &envelope); err != nil {
			return note, apperr.Wrap(apperr.KindValidation, "malformed push payload", err)
		}
		note = envelope.Alert
	}

	if note.IncidentID == "" {
		log.Warn("push notification is missing an incident id", "title", note.Title)
	}
	return note, nil
}

// Handler receives raw push payloads and republishes them as typed
// incident notification events.
type Handler struct {
	platform string
	bus      events.Bus
	log      *logger.Logger
}

func NewHandler(cfg interface{ GetPlatform() string }, bus events.Bus, log *logger.Logger) *Handler {
	return &Handler{platform: cfg.GetPlatform(), bus: bus, log: log}
}

// OnMessage normalizes a raw payload and publishes it synchronously, so
// notifications reach subscribers in arrival order. Malformed payloads
// are logged and dropped; subscriber errors are logged, never returned.
func (h *Handler) OnMessage(ctx context.Context, payload []byte) {
	h.log.Debug("push payload received", "payload", string(payload))

	note, err := Normalize(payload, h.platform, h.log)
	if err != nil {
		h.log.Warn("dropping push notification", "error", err)
		return
	}

	err = h.bus.PublishSync(ctx, events.IncidentNotificationReceived{
		BaseEvent:  events.NewBaseEvent(),
		IncidentID: note.IncidentID,
		Title:      note.Title,
		Message:    note.Message,
	})
	if err != nil {
		h.log.Warn("notification subscriber failed", "error", err)
	}
}
