package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-member-auth/internal/config"
	"github.com/MKhiriev/go-member-auth/internal/logger"
	"github.com/MKhiriev/go-member-auth/internal/utils"
	"github.com/MKhiriev/go-member-auth/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying resty client with it and the request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
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

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed).
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

// Login implements [ServerAdapter]. It POSTs credentials as JSON to
// /api/auth/login and keeps the bearer token from the Authorization
// response header.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.Principal, error) {
	var principal models.Principal

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&principal).
		Post("/api/auth/login")
	if err != nil {
		return models.Principal{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Principal{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Principal{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	h.logger.Debug().Str("login", principal.LoginName).Msg("logged in")
	return principal, nil
}

// Me implements [ServerAdapter] via GET /api/me.
func (h *httpServerAdapter) Me(ctx context.Context) (models.Principal, error) {
	var principal models.Principal
	if err := h.getAuthorized(ctx, "/api/me", &principal); err != nil {
		return models.Principal{}, err
	}
	return principal, nil
}

// MainPage implements [ServerAdapter] via GET /api/main.
func (h *httpServerAdapter) MainPage(ctx context.Context) (models.MainPage, error) {
	var page models.MainPage
	if err := h.getAuthorized(ctx, "/api/main", &page); err != nil {
		return models.MainPage{}, err
	}
	return page, nil
}

// Products implements [ServerAdapter] via GET /api/products.
func (h *httpServerAdapter) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := h.getAuthorized(ctx, "/api/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Version implements [ServerAdapter] via GET /api/version.
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

func (h *httpServerAdapter) getAuthorized(ctx context.Context, path string, result any) error {
	token := h.Token()
	if token == "" {
		return ErrNotLoggedIn
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(result).
		Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}

	return mapHTTPError(resp)
}
