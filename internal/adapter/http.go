package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/junohealth/notecache/internal/config"
	"github.com/junohealth/notecache/internal/logger"
	"github.com/junohealth/notecache/internal/utils"
	"github.com/junohealth/notecache/models"
)

type httpRemoteSource struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPRemoteSource constructs an HTTP/REST implementation of
// [RemoteSource]. It normalises and validates the base URL from
// adapterCfg.BaseURL and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPRemoteSource(adapterCfg config.ClientAdapter, logger *logger.Logger) (RemoteSource, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpRemoteSource{client: client, ids: utils.NewUUIDGenerator(), logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchNotes implements [RemoteSource]. It GETs /api/notes with the site,
// look-back window, and optional page selection from req as query
// parameters, and decodes the response envelope. A freshly generated trace id
// is forwarded as the X-Request-Id header. Returns an error if the request
// fails, the server returns a non-2xx status, the payload cannot be decoded,
// or the envelope reports Success=false.
func (h *httpRemoteSource) FetchNotes(ctx context.Context, req models.FetchRequest) (models.NotesResponse, error) {
	log := logger.FromContext(ctx)
	traceID := h.ids.Generate()

	request := h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", traceID).
		SetQueryParam("site", req.Site).
		SetQueryParam("days", strconv.Itoa(req.Days))

	if req.Page > 0 {
		request.SetQueryParam("page", strconv.Itoa(req.Page))
	}
	if req.PerPage > 0 {
		request.SetQueryParam("per_page", strconv.Itoa(req.PerPage))
	}
	if req.Force {
		request.SetQueryParam("force", "true")
	}

	log.Debug().
		Str("func", "httpRemoteSource.FetchNotes").
		Str("site", req.Site).
		Str("trace_id", traceID).
		Int("days", req.Days).
		Int("page", req.Page).
		Msg("fetching notes from remote source")

	resp, err := request.Get("/api/notes")
	if err != nil {
		return models.NotesResponse{}, fmt.Errorf("fetch notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NotesResponse{}, err
	}

	var envelope models.NotesResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.NotesResponse{}, fmt.Errorf("decode notes response: %w", err)
	}

	if !envelope.Success {
		msg := envelope.Error
		if msg == "" {
			msg = "no error message supplied"
		}
		return models.NotesResponse{}, fmt.Errorf("%w: %s", ErrRemoteFailure, msg)
	}

	return envelope, nil
}
