// Package storage retrieves incident attachments from the backend's
// storage API and returns them base64 encoded for display.
package storage

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	"fixitfast_technician/internal/auth"
	"fixitfast_technician/internal/transport"
	"fixitfast_technician/platform/config"
	"fixitfast_technician/platform/logger"
)

const (
	userDataCollectionID = "FIF_UserData"
	storagePath          = "/mobile/platform/storage"
	headerBackendID      = "oracle-mobile-backend-id"
	userQueryMarker      = "?user="
)

// Images resolves remote attachment links against the storage API.
type Images struct {
	client *transport.Client
	creds  auth.Provider
	cfg    config.BackendConfig
	log    *logger.Logger
}

func NewImages(client *transport.Client, creds auth.Provider, cfg config.BackendConfig, log *logger.Logger) *Images {
	return &Images{client: client, creds: creds, cfg: cfg, log: log}
}

// ImageForLink downloads the object behind a remote attachment link and
// returns it base64 encoded. An empty link, a failed download or an empty
// response body all yield the placeholder image; callers never receive an
// error from this method.
func (s *Images) ImageForLink(ctx context.Context, link string) string {
	if link == "" {
		s.log.Debug("no remote image link, serving placeholder")
		return PlaceholderImage
	}

	req := transport.NewRequest(http.MethodGet, objectURI(link)).
		SetHeader("Accept", "image/*").
		SetHeader(headerBackendID, s.cfg.GetBackendID()).
		SetHeader("Authorization", s.creds.AuthorizationHeader())

	resp, err := s.client.SendBinary(ctx, req)
	if err != nil {
		s.log.Warn("image download failed, serving placeholder", "link", link, "error", err)
		return PlaceholderImage
	}
	if resp.Status != http.StatusOK || len(resp.BinaryPayload) == 0 {
		s.log.Warn("image download returned no usable payload, serving placeholder",
			"link", link, "status", resp.Status)
		return PlaceholderImage
	}
	return base64.StdEncoding.EncodeToString(resp.BinaryPayload)
}

// objectURI rebuilds the storage URI for a remote link. The object id is the
// last path segment; a user isolation query string is carried over verbatim.
func objectURI(link string) string {
	rest := link
	query := ""
	if i := strings.Index(link, userQueryMarker); i >= 0 {
		rest = link[:i]
		query = link[i:]
	}
	objectID := rest
	if i := strings.LastIndex(rest, "/"); i >= 0 {
		objectID = rest[i+1:]
	}
	return storagePath + "/collections/" + userDataCollectionID + "/objects/" + objectID + query
}
