// Package auth authenticates the technician against the mobile backend and
// yields ready-to-use Authorization header values for the other modules.
package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"fixitfast_technician/internal/transport"
	"fixitfast_technician/platform/apperr"
	"fixitfast_technician/platform/config"
	"fixitfast_technician/platform/logger"
)

const (
	headerBackendID = "Oracle-Mobile-Backend-Id"
	loginPath       = "/mobile/platform/users/login"
)

// Provider yields an Authorization header value consumed by the
// repository, analytics, storage and push modules.
type Provider interface {
	AuthorizationHeader() string
	Authenticated() bool
}

// Service performs basic and OAuth login flows and holds the resulting
// credential for the rest of the process lifetime.
type Service struct {
	client  *transport.Client
	cfg     config.AuthConfig
	log     *logger.Logger
	aliases map[string]string

	mu        sync.RWMutex
	header    string
	username  string
	expiresAt time.Time
}

// NewService creates an authentication service.
func NewService(client *transport.Client, cfg config.AuthConfig, log *logger.Logger) *Service {
	return &Service{
		client: client,
		cfg:    cfg,
		log:    log,
		aliases: map[string]string{
			"joe":  "joe@fixit.com",
			"jill": "jill@fixit.com",
		},
	}
}

// SetAccountAlias maps a short login name onto its backend account.
// The demo accounts joe and jill are preinstalled.
func (s *Service) SetAccountAlias(alias, account string) {
	s.mu.Lock()
	s.aliases[strings.ToLower(strings.TrimSpace(alias))] = account
	s.mu.Unlock()
}

// BasicLogin probes the backend login endpoint with basic credentials.
// On success the basic header becomes the credential for subsequent calls.
func (s *Service) BasicLogin(ctx context.Context, username, password string) error {
	username = s.canonicalUsername(username)
	header := "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))

	req := transport.NewRequest(http.MethodGet, loginPath).
		SetHeader("Authorization", header).
		SetHeader(headerBackendID, s.cfg.GetBackendID())

	resp, err := s.client.SendText(ctx, req)
	if err != nil {
		s.log.AuthEvent("basic_login", username, false, err.Error())
		return apperr.Wrap(apperr.KindTransport, "login request failed", err).WithOp("auth.BasicLogin")
	}
	if resp.Status != http.StatusOK {
		s.log.AuthEvent("basic_login", username, false, fmt.Sprintf("status %d", resp.Status))
		return apperr.Unauthorized("login rejected").WithStatus(resp.Status).WithOp("auth.BasicLogin")
	}

	s.mu.Lock()
	s.header = header
	s.username = username
	s.expiresAt = time.Time{}
	s.mu.Unlock()

	s.log.AuthEvent("basic_login", username, true, "")
	return nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// OAuthLogin performs a resource-owner password grant against the
// configured token endpoint and stores the bearer credential.
func (s *Service) OAuthLogin(ctx context.Context, username, password string) error {
	username = s.canonicalUsername(username)

	endpoint := s.cfg.GetOAuthTokenEndpoint()
	if endpoint == "" {
		return apperr.Internal("no OAuth token endpoint configured").WithOp("auth.OAuthLogin")
	}

	clientHeader := base64.StdEncoding.EncodeToString(
		[]byte(s.cfg.GetOAuthClientID() + ":" + s.cfg.GetOAuthClientSecret()))

	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", username)
	form.Set("password", password)

	s.client.RegisterConnection("oauth", endpoint)
	req := transport.NewRequest(http.MethodPost, "").
		WithPayload(form.Encode()).
		SetHeader("Authorization", "Basic "+clientHeader).
		SetHeader("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")
	req.ConnectionName = "oauth"

	resp, err := s.client.SendText(ctx, req)
	if err != nil {
		s.log.AuthEvent("oauth_login", username, false, err.Error())
		return apperr.Wrap(apperr.KindTransport, "token request failed", err).WithOp("auth.OAuthLogin")
	}
	if resp.Status != http.StatusOK {
		s.log.AuthEvent("oauth_login", username, false, fmt.Sprintf("status %d", resp.Status))
		return apperr.Unauthorized("token request rejected").WithStatus(resp.Status).WithOp("auth.OAuthLogin")
	}

	var token tokenResponse
	if err := json.Unmarshal([]byte(resp.Payload), &token); err != nil {
		return apperr.Wrap(apperr.KindValidation, "malformed token response", err).WithOp("auth.OAuthLogin")
	}
	if token.AccessToken == "" {
		return apperr.Validation("token response missing access_token").WithOp("auth.OAuthLogin")
	}

	s.mu.Lock()
	s.header = "Bearer " + token.AccessToken
	s.username = username
	s.expiresAt = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	s.mu.Unlock()

	s.log.AuthEvent("oauth_login", username, true, "")
	return nil
}

// AuthorizationHeader returns the stored credential, or empty when not
// authenticated.
func (s *Service) AuthorizationHeader() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.header
}

// Authenticated reports whether a non-expired credential is held.
func (s *Service) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.header == "" {
		return false
	}
	if s.expiresAt.IsZero() {
		return true
	}
	return time.Now().Before(s.expiresAt)
}

// Username returns the canonical username of the authenticated user.
func (s *Service) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username
}

// Logout clears the stored credential.
func (s *Service) Logout() {
	s.mu.Lock()
	s.header = ""
	s.username = ""
	s.expiresAt = time.Time{}
	s.mu.Unlock()
}

// canonicalUsername maps aliased short-names onto their backend accounts.
func (s *Service) canonicalUsername(username string) string {
	username = strings.TrimSpace(username)
	s.mu.RLock()
	defer s.mu.RUnlock()
	if account, ok := s.aliases[strings.ToLower(username)]; ok {
		return account
	}
	return username
}
