package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-member-auth/internal/store"
	"github.com/MKhiriev/go-member-auth/internal/utils"
	"github.com/MKhiriev/go-member-auth/models"
)

func TestProducts(t *testing.T) {
	h := newTestHandler(acceptingVerifier(), tokenAuth(), catalogService())
	rec := httptest.NewRecorder()

	h.products(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []models.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, catalog, got)
}

func TestProducts_StoreError(t *testing.T) {
	products := catalogService()
	products.findAllFn = func(context.Context) ([]models.Product, error) { return nil, store.ErrExecutingQuery }
	h := newTestHandler(acceptingVerifier(), tokenAuth(), products)
	rec := httptest.NewRecorder()

	h.products(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestMainPage(t *testing.T) {
	h := newTestHandler(acceptingVerifier(), tokenAuth(), catalogService())

	req := httptest.NewRequest(http.MethodGet, "/api/main", nil)
	req = req.WithContext(utils.WithPrincipal(req.Context(), alice))
	rec := httptest.NewRecorder()
	h.mainPage(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.MainPage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, models.MainPage{Username: "alice", Products: catalog}, got)
}

func TestMainPage_Errors(t *testing.T) {
	products := catalogService()
	products.mainPageFn = func(context.Context, models.Principal) (models.MainPage, error) {
		return models.MainPage{}, store.ErrScanningRows
	}
	h := newTestHandler(acceptingVerifier(), tokenAuth(), products)

	rec := httptest.NewRecorder()
	h.mainPage(rec, httptest.NewRequest(http.MethodGet, "/api/main", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/main", nil)
	req = req.WithContext(utils.WithPrincipal(req.Context(), alice))
	rec = httptest.NewRecorder()
	h.mainPage(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
