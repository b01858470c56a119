package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-member-auth/models"
)

func TestInit_RegistersRoutes(t *testing.T) {
	router := newTestHandler(acceptingVerifier(), tokenAuth(), catalogService()).Init()

	tests := []struct {
		method string
		path   string
		auth   bool
		want   int
	}{
		{http.MethodGet, "/api/version", false, http.StatusOK},
		{http.MethodGet, "/api/me", true, http.StatusOK},
		{http.MethodGet, "/api/main", true, http.StatusOK},
		{http.MethodGet, "/api/products", true, http.StatusOK},
		{http.MethodGet, "/api/me", false, http.StatusUnauthorized},
		{http.MethodGet, "/api/main", false, http.StatusUnauthorized},
		{http.MethodGet, "/api/auth/login", false, http.StatusNotFound},
		{http.MethodPut, "/api/version", false, http.StatusNotFound},
		{http.MethodGet, "/does/not/exist", false, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.auth {
				req.Header.Set("Authorization", "Bearer "+testSignedToken)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
		})
	}
}

func TestInit_LoginThenMe(t *testing.T) {
	router := newTestHandler(acceptingVerifier(), tokenAuth(), catalogService()).Init()

	rec := httptest.NewRecorder()
	login := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"login":"alice","password":"p1"}`))
	router.ServeHTTP(rec, login)
	require.Equal(t, http.StatusOK, rec.Code)
	bearer := rec.Header().Get("Authorization")

	rec = httptest.NewRecorder()
	me := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	me.Header.Set("Authorization", bearer)
	router.ServeHTTP(rec, me)

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.Principal
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, alice, got)
}

func TestGetServerVersion(t *testing.T) {
	h := newTestHandler(acceptingVerifier(), tokenAuth(), catalogService())
	rec := httptest.NewRecorder()

	h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, testVersion, rec.Body.String())
}
