package incidents

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"fixitfast_technician/internal/auth"
	"fixitfast_technician/internal/device"
	"fixitfast_technician/internal/events"
	"fixitfast_technician/internal/transport"
	"fixitfast_technician/platform/apperr"
	"fixitfast_technician/platform/config"
	"fixitfast_technician/platform/logger"
	"fixitfast_technician/platform/validator"
)

const (
	incidentsPath   = "/mobile/custom/incident/incidents"
	headerBackendID = "oracle-mobile-backend-id"
	queryRetryLimit = 2
)

// Filter tokens accepted by FilterByStatus.
const (
	FilterAll = "ALL"
)

// Repository owns the authoritative incident cache and the currently
// displayed filtered view. It is designed as one instance per active user
// session, not for multi-tenant use.
type Repository struct {
	client   *transport.Client
	creds    auth.Provider
	cfg      config.BackendConfig
	location device.LocationProvider
	bus      events.Bus
	log      *logger.Logger
	validate *validator.Validator

	mu         sync.Mutex
	cache      []Incident
	displayed  []Incident
	message    string
	hasMessage bool
	technician string
	contact    string
}

// NewRepository creates an incident repository.
func NewRepository(
	client *transport.Client,
	creds auth.Provider,
	cfg config.BackendConfig,
	location device.LocationProvider,
	bus events.Bus,
	log *logger.Logger,
) *Repository {
	return &Repository{
		client:   client,
		creds:    creds,
		cfg:      cfg,
		location: location,
		bus:      bus,
		log:      log,
		validate: validator.New(),
	}
}

// QueryForTechnician fetches incidents assigned to the named technician.
func (r *Repository) QueryForTechnician(ctx context.Context, technician string) ([]Incident, error) {
	return r.Query(ctx, "", technician)
}

// QueryForContact fetches incidents reported by the named contact.
func (r *Repository) QueryForContact(ctx context.Context, contact string) ([]Incident, error) {
	return r.Query(ctx, contact, "")
}

// Query fetches incidents filtered by contact and/or technician, with the
// current position attached for server-side distance annotation. At least
// one of the two filters is required; missing both is caller misuse and
// fails synchronously. Transport or backend failures degrade to an empty
// list plus an advisory message.
func (r *Repository) Query(ctx context.Context, contact, technician string) ([]Incident, error) {
	if contact == "" && technician == "" {
		return nil, apperr.InvalidFilter("contact and technician cannot both be empty").WithOp("incidents.Query")
	}

	params := url.Values{}
	if contact != "" {
		params.Set("contacts", contact)
	}
	if technician != "" {
		params.Set("technician", technician)
	}
	if r.location != nil {
		if gps := r.location.Position(); gps != "" {
			params.Set("gps", gps)
		}
	}

	fetched, ok := r.fetchList(ctx, incidentsPath+"?"+params.Encode())
	if !ok {
		return []Incident{}, nil
	}

	r.mu.Lock()
	r.contact = contact
	r.technician = technician
	r.cache = fetched
	r.displayed = copyIncidents(fetched)
	result := copyIncidents(r.displayed)
	r.mu.Unlock()

	return result, nil
}

func (r *Repository) fetchList(ctx context.Context, uri string) ([]Incident, bool) {
	r.resetMessage()

	req := r.newRequest(http.MethodGet, uri)
	req.RetryLimit = queryRetryLimit

	resp, err := r.client.SendText(ctx, req)
	if err != nil {
		r.setMessage(fmt.Sprintf("incident query failed: %v", err))
		return nil, false
	}
	if resp.Status != http.StatusOK {
		r.setMessage(fmt.Sprintf("incident query rejected with status %d", resp.Status))
		return nil, false
	}

	fetched, skipped := decodeIncidentList(resp.Payload, r.validate)
	for _, err := range skipped {
		r.log.Warn("skipping incident record", "error", err.Error())
	}
	if fetched == nil {
		r.setMessage("incident query returned an unreadable result")
		return nil, false
	}
	return fetched, true
}

// FilterByStatus replaces the displayed list with a wholesale re-filter of
// the cache. ALL restores a copy of the full cache; the known status
// tokens select case-insensitive matches; anything else leaves the
// displayed list untouched.
func (r *Repository) FilterByStatus(value string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.EqualFold(value, FilterAll) {
		r.displayed = copyIncidents(r.cache)
		return
	}

	switch {
	case strings.EqualFold(value, StatusNew),
		strings.EqualFold(value, StatusInProgress),
		strings.EqualFold(value, StatusComplete):
		filtered := make([]Incident, 0, len(r.cache))
		for _, incident := range r.cache {
			if strings.EqualFold(incident.Status, value) {
				filtered = append(filtered, incident)
			}
		}
		r.displayed = filtered
	default:
		// Unknown tokens are deliberately a silent no-op.
		r.log.Debug("ignoring unrecognized status filter", "value", value)
	}
}

// Displayed returns a copy of the currently displayed list.
func (r *Repository) Displayed() []Incident {
	r.mu.Lock()
	defer r.mu.Unlock()
	return copyIncidents(r.displayed)
}

// Cached returns a copy of the authoritative cache.
func (r *Repository) Cached() []Incident {
	r.mu.Lock()
	defer r.mu.Unlock()
	return copyIncidents(r.cache)
}

// HasCache reports whether a list fetch has populated the cache.
func (r *Repository) HasCache() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cache != nil
}

// GetByID always bypasses the cache and issues a fresh fetch. Incidents
// may be requested from a push notification before any list query has
// happened, so staleness is unacceptable here. Returns nil with an
// advisory message on any failure.
func (r *Repository) GetByID(ctx context.Context, id int) *Incident {
	r.resetMessage()

	req := r.newRequest(http.MethodGet, fmt.Sprintf("%s/%d", incidentsPath, id))

	resp, err := r.client.SendText(ctx, req)
	if err != nil {
		r.setMessage(fmt.Sprintf("incident %d fetch failed: %v", id, err))
		return nil
	}
	if resp.Status != http.StatusOK {
		r.setMessage(fmt.Sprintf("incident %d fetch rejected with status %d", id, resp.Status))
		return nil
	}

	incident, err := decodeIncident(resp.Payload, r.validate)
	if err != nil {
		r.log.Warn("unreadable incident detail", "id", id, "error", err.Error())
		r.setMessage(fmt.Sprintf("incident %d could not be read", id))
		return nil
	}
	return incident
}

type statusUpdate struct {
	Status string `json:"Status"`
	Notes  string `json:"Notes"`
}

// UpdateStatus issues the status-update round trip. Success is HTTP 200.
// The cache is deliberately not touched; detail views are always-live and
// list views re-fetch.
func (r *Repository) UpdateStatus(ctx context.Context, id int, status, notes string) bool {
	r.resetMessage()

	payload, _ := json.Marshal(statusUpdate{Status: status, Notes: notes})
	req := r.newRequest(http.MethodPut, fmt.Sprintf("%s/%d/status", incidentsPath, id)).
		WithPayload(string(payload))

	resp, err := r.client.SendText(ctx, req)
	if err != nil {
		r.setMessage(fmt.Sprintf("status update for incident %d failed: %v", id, err))
		return false
	}
	if resp.Status != http.StatusOK {
		r.setMessage(fmt.Sprintf("status update for incident %d rejected with status %d", id, resp.Status))
		return false
	}

	if r.bus != nil {
		r.bus.Publish(ctx, events.IncidentStatusChanged{
			BaseEvent:  events.NewBaseEvent(),
			IncidentID: fmt.Sprintf("%d", id),
			Status:     status,
		})
	}
	return true
}

// Reset clears the cache and immediately re-fetches with the remembered
// filters. With no remembered filters it behaves like Clear.
func (r *Repository) Reset(ctx context.Context) {
	r.mu.Lock()
	contact, technician := r.contact, r.technician
	r.cache = nil
	r.displayed = nil
	r.mu.Unlock()

	if contact == "" && technician == "" {
		return
	}
	if _, err := r.Query(ctx, contact, technician); err != nil {
		r.log.Warn("reset re-query failed", "error", err.Error())
	}
}

// Clear empties the cache, leaving the repository unloaded until the next
// query.
func (r *Repository) Clear() {
	r.mu.Lock()
	r.cache = nil
	r.displayed = nil
	r.mu.Unlock()
}

// Message returns the advisory message for the last failed operation.
func (r *Repository) Message() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.message
}

// HasMessage reports whether an advisory message is pending.
func (r *Repository) HasMessage() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hasMessage
}

func (r *Repository) setMessage(message string) {
	r.mu.Lock()
	r.message = message
	r.hasMessage = true
	r.mu.Unlock()
	r.log.Warn("incident operation degraded", "message", message)
}

func (r *Repository) resetMessage() {
	r.mu.Lock()
	r.message = ""
	r.hasMessage = false
	r.mu.Unlock()
}

func (r *Repository) newRequest(method, uri string) *transport.RequestContext {
	req := transport.NewRequest(method, uri).
		SetHeader(headerBackendID, r.cfg.GetBackendID())
	if r.creds != nil {
		if header := r.creds.AuthorizationHeader(); header != "" {
			req.SetHeader("Authorization", header)
		}
	}
	return req
}

func copyIncidents(src []Incident) []Incident {
	if src == nil {
		return nil
	}
	dst := make([]Incident, len(src))
	copy(dst, src)
	return dst
}
