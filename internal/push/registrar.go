// Package push registers device tokens with the backend's notification
// service and normalizes incoming notification payloads.
package push

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"fixitfast_technician/internal/auth"
	"fixitfast_technician/internal/events"
	"fixitfast_technician/internal/tasks"
	"fixitfast_technician/internal/transport"
	"fixitfast_technician/platform/config"
	"fixitfast_technician/platform/logger"
)

const (
	registerPath   = "/mobile/platform/devices/register"
	deregisterPath = "/mobile/platform/devices/deregister"

	headerBackendID = "oracle-mobile-backend-id"

	// Bundle ids the backend's notification profiles are provisioned for.
	androidClientID = "com.oracle.FixItFastTechnician"
	iosClientID     = "com.oraclecorp.internal.ent3.FixItFastTechnician"

	clientVersion = "1.0"
)

type mobileClient struct {
	ID       string `json:"id"`
	Version  string `json:"version,omitempty"`
	Platform string `json:"platform"`
}

type registration struct {
	MobileClient      mobileClient `json:"mobileClient"`
	NotificationToken string       `json:"notificationToken"`
}

// Registrar manages the device token registration with the backend.
// (De)registration runs on the shared background pool; failures are
// logged, never surfaced to the caller.
type Registrar struct {
	client  *transport.Client
	creds   auth.Provider
	backend config.BackendConfig
	cfg     config.PushConfig
	pool    *tasks.Pool
	bus     events.Bus
	log     *logger.Logger

	mu         sync.Mutex
	registered bool
}

func NewRegistrar(client *transport.Client, creds auth.Provider, backend config.BackendConfig, cfg config.PushConfig, pool *tasks.Pool, bus events.Bus, log *logger.Logger) *Registrar {
	return &Registrar{
		client:  client,
		creds:   creds,
		backend: backend,
		cfg:     cfg,
		pool:    pool,
		bus:     bus,
		log:     log,
	}
}

// Register submits the device token for registration on the background
// pool. A device already registered in this process is not registered
// again. Returns false when the task could not be queued.
func (r *Registrar) Register(token string) bool {
	r.mu.Lock()
	if r.registered {
		r.mu.Unlock()
		r.log.Debug("device already registered for push, skipping")
		return true
	}
	r.mu.Unlock()

	return r.pool.Submit("push.register", func(ctx context.Context) error {
		if r.send(ctx, registerPath, token) {
			r.mu.Lock()
			r.registered = true
			r.mu.Unlock()
		}
		return nil
	})
}

// Deregister removes the device token on the background pool. Returns
// false when the task could not be queued.
func (r *Registrar) Deregister(token string) bool {
	return r.pool.Submit("push.deregister", func(ctx context.Context) error {
		if r.send(ctx, deregisterPath, token) {
			r.mu.Lock()
			r.registered = false
			r.mu.Unlock()
		}
		return nil
	})
}

// Registered reports whether the token registration has succeeded.
func (r *Registrar) Registered() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.registered
}

func (r *Registrar) send(ctx context.Context, path, token string) bool {
	platform := strings.ToLower(r.cfg.GetPlatform())

	body := registration{
		MobileClient: mobileClient{
			ID:       androidClientID,
			Platform: strings.ToUpper(platform),
		},
		NotificationToken: token,
	}
	if platform == "ios" {
		body.MobileClient.ID = iosClientID
	}
	// version is only part of the registration payload
	if path == registerPath {
		body.MobileClient.Version = clientVersion
	}

	payload, err := json.Marshal(body)
	if err != nil {
		r.log.Error("failed to encode push registration payload", "error", err)
		return false
	}

	req := transport.NewRequest(http.MethodPost, path).
		SetHeader("Content-Type", "application/json").
		SetHeader(headerBackendID, r.backend.GetBackendID()).
		SetHeader("Authorization", r.creds.AuthorizationHeader()).
		WithPayload(string(payload))

	event := "register"
	if path == deregisterPath {
		event = "deregister"
	}

	resp, err := r.client.SendText(ctx, req)
	if err != nil {
		r.log.Error("push "+event+" request failed", "error", err)
		return false
	}

	r.log.PushEvent(event, platform, resp.Status)

	switch resp.Status {
	case http.StatusOK:
		r.bus.Publish(ctx, events.TokenRegistered{
			BaseEvent: events.NewBaseEvent(),
			Provider:  platform,
			Status:    resp.Status,
		})
		return true
	case http.StatusBadRequest:
		r.log.Warn("push "+event+" rejected, likely invalid client id",
			"status", resp.Status, "body", resp.Payload)
	case http.StatusUnauthorized:
		r.log.Warn("push "+event+" not authorized, check backend id and credential",
			"status", resp.Status, "body", resp.Payload)
	default:
		r.log.Warn("push "+event+" failed", "status", resp.Status)
	}
	return false
}
