package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-member-auth/internal/app"
	"github.com/MKhiriev/go-member-auth/internal/crypto"
	"github.com/MKhiriev/go-member-auth/internal/service"
	"github.com/MKhiriev/go-member-auth/internal/store"
)

// errorStatuses is checked in order: service errors wrap store errors, so
// they must match first.
var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrMalformedLoginRequest, http.StatusBadRequest},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},

	{service.ErrBadCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrAuthenticationUnavailable, http.StatusServiceUnavailable},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},
	{crypto.ErrHasherMisconfiguration, http.StatusInternalServerError},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError replies with the mapped status. Credential failures share one
// body so the response never tells why a login was rejected.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	switch {
	case errors.Is(err, service.ErrBadCredentials):
		http.Error(w, app.MsgInvalidLoginPassword, status)
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		http.Error(w, app.MsgTokenIsExpiredOrInvalid, status)
	case status == http.StatusBadRequest || status == http.StatusUnauthorized:
		http.Error(w, err.Error(), status)
	case status == http.StatusServiceUnavailable:
		http.Error(w, app.MsgAuthenticationUnavailable, status)
	default:
		http.Error(w, app.MsgInternalServerError, status)
	}
}
