package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-member-auth/internal/logger"
	"github.com/MKhiriev/go-member-auth/internal/service"
	"github.com/MKhiriev/go-member-auth/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

type mockCredentialVerifier struct {
	authenticateFn func(ctx context.Context, loginName, rawSecret string) (models.Principal, error)
}

func (m *mockCredentialVerifier) Authenticate(ctx context.Context, loginName, rawSecret string) (models.Principal, error) {
	return m.authenticateFn(ctx, loginName, rawSecret)
}

type mockAuthService struct {
	createTokenFn func(ctx context.Context, principal models.Principal) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Principal, error)
}

func (m *mockAuthService) CreateToken(ctx context.Context, principal models.Principal) (models.Token, error) {
	return m.createTokenFn(ctx, principal)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Principal, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockProductService struct {
	findAllFn  func(ctx context.Context) ([]models.Product, error)
	mainPageFn func(ctx context.Context, principal models.Principal) (models.MainPage, error)
}

func (m *mockProductService) FindAll(ctx context.Context) ([]models.Product, error) {
	return m.findAllFn(ctx)
}

func (m *mockProductService) MainPage(ctx context.Context, principal models.Principal) (models.MainPage, error) {
	return m.mainPageFn(ctx, principal)
}

// ─────────────────────────────────────────────
// Fixtures
// ─────────────────────────────────────────────

const (
	testSignedToken = "signed.jwt.token"
	testVersion     = "1.2.3"
)

var alice = models.Principal{LoginName: "alice", Authorities: []string{"read", "write"}}

var catalog = []models.Product{
	{ID: 1, Name: "Chocolate", Price: 10, Currency: models.USD},
	{ID: 2, Name: "Coffee", Price: 4.5, Currency: models.EUR},
}

// acceptingVerifier accepts alice/p1 only.
func acceptingVerifier() *mockCredentialVerifier {
	return &mockCredentialVerifier{
		authenticateFn: func(_ context.Context, login, secret string) (models.Principal, error) {
			if login == "alice" && secret == "p1" {
				return alice, nil
			}
			return models.Principal{}, service.ErrBadCredentials
		},
	}
}

// tokenAuth issues testSignedToken for every principal and accepts only it.
func tokenAuth() *mockAuthService {
	return &mockAuthService{
		createTokenFn: func(_ context.Context, p models.Principal) (models.Token, error) {
			return models.Token{SignedString: testSignedToken, Principal: p}, nil
		},
		parseTokenFn: func(_ context.Context, raw string) (models.Principal, error) {
			if raw == testSignedToken {
				return alice, nil
			}
			return models.Principal{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
}

func catalogService() *mockProductService {
	return &mockProductService{
		findAllFn: func(context.Context) ([]models.Product, error) { return catalog, nil },
		mainPageFn: func(_ context.Context, p models.Principal) (models.MainPage, error) {
			return models.MainPage{Username: p.LoginName, Products: catalog}, nil
		},
	}
}

func newTestHandler(verifier service.CredentialVerifier, auth service.AuthService, products service.ProductService) *Handler {
	return NewHandler(&service.Services{
		CredentialVerifier: verifier,
		AuthService:        auth,
		ProductService:     products,
	}, testVersion, logger.Nop())
}

func jsonLoginRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func formLoginRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svcs, testVersion, log)
	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Equal(t, testVersion, h.version)
	assert.Equal(t, log, h.logger)
}
