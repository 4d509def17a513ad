// Package logger provides structured logging infrastructure for the client.
// This is part of the platform layer and contains no business logic.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger for structured logging
type Logger struct {
	*slog.Logger
}

// New creates a new logger based on environment
func New(env string) *Logger {
	return NewWithWriter(env, os.Stdout)
}

// NewWithWriter creates a logger writing to w. Tests use this to capture output.
func NewWithWriter(env string, w io.Writer) *Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	if strings.EqualFold(env, "development") {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithUserID returns a logger annotating every record with the
// authenticated user. The root command attaches it after login.
func (l *Logger) WithUserID(userID string) *Logger {
	return &Logger{
		Logger: l.With(slog.String("user_id", userID)),
	}
}

// RESTCall logs an outbound REST call against the mobile backend.
func (l *Logger) RESTCall(method, uri string, status int, latencyMs float64) {
	l.Info("rest_call",
		slog.String("method", method),
		slog.String("uri", uri),
		slog.Int("status", status),
		slog.Float64("latency_ms", latencyMs),
	)
}

// RESTError logs an outbound REST call that failed before or at the HTTP layer.
func (l *Logger) RESTError(method, uri string, status int, err error) {
	l.Error("rest_error",
		slog.String("method", method),
		slog.String("uri", uri),
		slog.Int("status", status),
		slog.String("error", err.Error()),
	)
}

// AuthEvent logs authentication events
func (l *Logger) AuthEvent(event, username string, success bool, reason string) {
	if success {
		l.Info("auth_event",
			slog.String("event", event),
			slog.String("username", username),
			slog.Bool("success", success),
		)
	} else {
		l.Warn("auth_event",
			slog.String("event", event),
			slog.String("username", username),
			slog.Bool("success", success),
			slog.String("reason", reason),
		)
	}
}

// AnalyticsUpload logs the outcome of an analytics batch upload.
func (l *Logger) AnalyticsUpload(sessionID string, events int, status int, accepted bool) {
	if accepted {
		l.Info("analytics_upload",
			slog.String("session_id", sessionID),
			slog.Int("events", events),
			slog.Int("status", status),
		)
	} else {
		l.Warn("analytics_upload_lost",
			slog.String("session_id", sessionID),
			slog.Int("events", events),
			slog.Int("status", status),
		)
	}
}

// PushEvent logs push registration lifecycle events.
func (l *Logger) PushEvent(event, provider string, status int) {
	l.Info("push_event",
		slog.String("event", event),
		slog.String("provider", provider),
		slog.Int("status", status),
	)
}
