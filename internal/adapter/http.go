package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/project-elevate/internal/config"
	"github.com/MKhiriev/project-elevate/internal/logger"
	"github.com/MKhiriev/project-elevate/internal/utils"
	"github.com/MKhiriev/project-elevate/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from cfg.HTTPAddress and
// configures the underlying HTTP client with it and the request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// /api/auth/login and stores the returned token.
func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error) {
	var loginResponse models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&loginResponse).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	if loginResponse.Token == "" {
		return models.LoginResponse{}, fmt.Errorf("login response: %w", ErrUnauthorized)
	}

	h.SetToken(loginResponse.Token)
	h.logger.Debug().Str("id", loginResponse.User.ID).Msg("logged in")

	return loginResponse, nil
}

// ListAssessments implements [ServerAdapter].
func (h *httpServerAdapter) ListAssessments(ctx context.Context) ([]models.Assessment, error) {
	var assessments []models.Assessment

	resp, err := h.authedRequest(ctx).
		SetResult(&assessments).
		Get("/api/assessments")
	if err != nil {
		return nil, fmt.Errorf("list assessments request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if assessments == nil {
		assessments = []models.Assessment{}
	}

	return assessments, nil
}

// Version implements [ServerAdapter].
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
