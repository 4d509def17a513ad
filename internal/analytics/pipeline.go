package analytics

import (
	"context"
	"net/http"
	"sync"

	"fixitfast_technician/internal/auth"
	"fixitfast_technician/internal/device"
	"fixitfast_technician/internal/transport"
	"fixitfast_technician/platform/config"
	"fixitfast_technician/platform/logger"
)

const (
	eventsPath = "/mobile/platform/analytics/events"

	headerApplicationKey = "Oracle-Mobile-APPLICATION-KEY"
	headerBackendID      = "Oracle-Mobile-Backend-ID"
	headerDeviceID       = "Oracle-Mobile-DEVICE-ID"
	headerSessionID      = "Oracle-Mobile-ANALYTICS-SESSION-ID"

	// uploadQueueDepth bounds pending batches so a dead backend cannot
	// grow memory without limit. Overflowing batches are dropped.
	uploadQueueDepth = 16
)

type batch struct {
	session Session
	events  []Event
}

// Pipeline owns the event queue and session lifecycle. One instance per
// active user session; uploads run on a dedicated single worker goroutine
// so batches never upload concurrently.
type Pipeline struct {
	client   *transport.Client
	creds    auth.Provider
	backend  config.BackendConfig
	cfg      config.AnalyticsConfig
	info     device.Info
	location device.LocationProvider
	log      *logger.Logger

	mu          sync.Mutex
	session     *Session
	queue       []Event
	closed      bool
	diagnostics map[string]string

	uploads chan batch
	done    chan struct{}
	once    sync.Once
}

// NewPipeline creates an analytics pipeline. Call Start before use.
func NewPipeline(
	client *transport.Client,
	creds auth.Provider,
	backend config.BackendConfig,
	cfg config.AnalyticsConfig,
	info device.Info,
	location device.LocationProvider,
	log *logger.Logger,
) *Pipeline {
	return &Pipeline{
		client:   client,
		creds:    creds,
		backend:  backend,
		cfg:      cfg,
		info:     info,
		location: location,
		log:      log,
		uploads:  make(chan batch, uploadQueueDepth),
		done:     make(chan struct{}),
	}
}

// Start launches the upload worker.
func (p *Pipeline) Start() {
	go p.worker()
}

// AddEvent lazily starts a session if none is active, binds the event to
// it and appends it to the outgoing queue. No network call happens here.
// When a flush threshold is configured, reaching it triggers a flush.
func (p *Pipeline) AddEvent(name string, properties map[string]string) {
	if !p.cfg.IsAnalyticsEnabled() {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.session == nil {
		p.session = NewSession()
	}
	event := NewEvent(name, properties)
	event.SessionID = p.session.ID
	p.queue = append(p.queue, event)

	if threshold := p.cfg.GetAnalyticsFlushThreshold(); threshold > 0 && len(p.queue) >= threshold {
		p.flushLocked()
	}
}

// SetDiagnosticHeader attaches a header to every subsequent batch upload,
// alongside the fixed analytics headers.
func (p *Pipeline) SetDiagnosticHeader(name, value string) {
	p.mu.Lock()
	if p.diagnostics == nil {
		p.diagnostics = make(map[string]string)
	}
	p.diagnostics[name] = value
	p.mu.Unlock()
}

// Flush hands the queued events plus a session snapshot to the upload
// worker and clears both, so events arriving during the upload land in a
// brand-new session. No-op when the queue is empty.
func (p *Pipeline) Flush() {
	if !p.cfg.IsAnalyticsEnabled() {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.flushLocked()
}

func (p *Pipeline) flushLocked() {
	if len(p.queue) == 0 {
		return
	}

	p.session.End()
	out := batch{session: *p.session, events: p.queue}
	for i := range out.events {
		out.events[i].SessionID = out.session.ID
	}
	p.queue = nil
	p.session = nil

	// A batch flushed after shutdown has nowhere to go; it is lost
	// like any other failed upload, never a panic.
	if p.closed {
		p.log.AnalyticsUpload(out.session.ID, len(out.events), 0, false)
		return
	}

	select {
	case p.uploads <- out:
	default:
		p.log.AnalyticsUpload(out.session.ID, len(out.events), 0, false)
	}
}

// Shutdown flushes pending events and waits for the worker to drain.
// The pipeline accepts no further uploads afterwards.
func (p *Pipeline) Shutdown(ctx context.Context) error {
	p.Flush()
	p.once.Do(func() {
		p.mu.Lock()
		p.closed = true
		p.mu.Unlock()
		close(p.uploads)
	})
	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pipeline) worker() {
	defer close(p.done)
	for b := range p.uploads {
		p.upload(b)
	}
}

// upload posts one framed batch. HTTP 202 means accepted; anything else
// loses the batch. It is never re-queued.
func (p *Pipeline) upload(b batch) {
	payload, err := marshalBatch(b, p.info, p.location, p.cfg.GetFeatureName())
	if err != nil {
		p.log.Error("analytics batch marshal failed", "error", err.Error())
		return
	}

	req := transport.NewRequest(http.MethodPost, eventsPath).
		WithPayload(string(payload)).
		SetHeader(headerApplicationKey, p.cfg.GetApplicationKey()).
		SetHeader(headerBackendID, p.backend.GetBackendID()).
		SetHeader(headerDeviceID, p.info.InstallationID()).
		SetHeader(headerSessionID, b.session.ID)
	p.mu.Lock()
	for name, value := range p.diagnostics {
		req.SetHeader(name, value)
	}
	p.mu.Unlock()
	if p.creds != nil {
		if header := p.creds.AuthorizationHeader(); header != "" {
			req.SetHeader("Authorization", header)
		}
	}

	resp, err := p.client.SendText(context.Background(), req)
	if err != nil {
		p.log.AnalyticsUpload(b.session.ID, len(b.events), 0, false)
		return
	}
	if resp.Status != http.StatusAccepted {
		p.log.AnalyticsUpload(b.session.ID, len(b.events), resp.Status, false)
		return
	}
	p.log.AnalyticsUpload(b.session.ID, len(b.events), resp.Status, true)
}
