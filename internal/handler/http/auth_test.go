package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-member-auth/internal/crypto"
	"github.com/MKhiriev/go-member-auth/internal/service"
	"github.com/MKhiriev/go-member-auth/internal/store"
	"github.com/MKhiriev/go-member-auth/internal/utils"
	"github.com/MKhiriev/go-member-auth/models"
)

func TestLogin_Success(t *testing.T) {
	tests := []struct {
		name string
		req  func() *http.Request
	}{
		{
			name: "json body",
			req:  func() *http.Request { return jsonLoginRequest(`{"login":"alice","password":"p1"}`) },
		},
		{
			name: "json body without content type",
			req: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"login":"alice","password":"p1"}`))
			},
		},
		{
			name: "form login",
			req: func() *http.Request {
				return formLoginRequest(url.Values{"username": {"alice"}, "password": {"p1"}})
			},
		},
		{
			name: "basic auth",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
				req.SetBasicAuth("alice", "p1")
				return req
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(acceptingVerifier(), tokenAuth(), catalogService())
			rec := httptest.NewRecorder()

			h.login(rec, tt.req())

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "Bearer "+testSignedToken, rec.Header().Get("Authorization"))

			var got models.Principal
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, alice, got)
		})
	}
}

func TestLogin_BadCredentialsLookTheSame(t *testing.T) {
	bodies := []string{
		`{"login":"alice","password":"wrong"}`,
		`{"login":"nobody","password":"p1"}`,
		`{"login":"Alice","password":"p1"}`,
		`{"login":"alice","password":""}`,
		`{}`,
	}

	var responses []string
	for _, body := range bodies {
		h := newTestHandler(acceptingVerifier(), tokenAuth(), catalogService())
		rec := httptest.NewRecorder()

		h.login(rec, jsonLoginRequest(body))

		assert.Equal(t, http.StatusUnauthorized, rec.Code, body)
		assert.Empty(t, rec.Header().Get("Authorization"), body)
		responses = append(responses, rec.Body.String())
	}

	for _, r := range responses {
		assert.Equal(t, "invalid login/password\n", r)
	}
}

func TestLogin_InvalidJSON(t *testing.T) {
	verifier := &mockCredentialVerifier{
		authenticateFn: func(context.Context, string, string) (models.Principal, error) {
			t.Fatal("verifier must not be called")
			return models.Principal{}, nil
		},
	}
	h := newTestHandler(verifier, tokenAuth(), catalogService())
	rec := httptest.NewRecorder()

	h.login(rec, jsonLoginRequest(`{not json`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		verifyErr  error
		wantStatus int
	}{
		{
			name:       "directory unavailable",
			verifyErr:  fmt.Errorf("%w: %w", service.ErrAuthenticationUnavailable, store.ErrExecutingQuery),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "hasher misconfiguration",
			verifyErr:  fmt.Errorf("%w: %w", crypto.ErrHasherMisconfiguration, store.ErrScanningRow),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "unexpected",
			verifyErr:  errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := &mockCredentialVerifier{
				authenticateFn: func(context.Context, string, string) (models.Principal, error) {
					return models.Principal{}, tt.verifyErr
				},
			}
			h := newTestHandler(verifier, tokenAuth(), catalogService())
			rec := httptest.NewRecorder()

			h.login(rec, jsonLoginRequest(`{"login":"alice","password":"p1"}`))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotContains(t, rec.Body.String(), "invalid login/password")
			assert.Empty(t, rec.Header().Get("Authorization"))
		})
	}
}

func TestLogin_TokenCreationFails(t *testing.T) {
	auth := tokenAuth()
	auth.createTokenFn = func(context.Context, models.Principal) (models.Token, error) {
		return models.Token{}, service.ErrTokenCreationFailed
	}
	h := newTestHandler(acceptingVerifier(), auth, catalogService())
	rec := httptest.NewRecorder()

	h.login(rec, jsonLoginRequest(`{"login":"alice","password":"p1"}`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Header().Get("Authorization"))
}

func TestMe(t *testing.T) {
	h := newTestHandler(acceptingVerifier(), tokenAuth(), catalogService())

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req = req.WithContext(utils.WithPrincipal(req.Context(), alice))
	rec := httptest.NewRecorder()
	h.me(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.Principal
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, alice, got)

	rec = httptest.NewRecorder()
	h.me(rec, httptest.NewRequest(http.MethodGet, "/api/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
