package http

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"

	"github.com/MKhiriev/go-member-auth/internal/app"
	"github.com/MKhiriev/go-member-auth/internal/logger"
	"github.com/MKhiriev/go-member-auth/internal/utils"
	"github.com/MKhiriev/go-member-auth/models"
)

// Form field names of the form-login flow.
const (
	formLoginField    = "username"
	formPasswordField = "password"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	credentials, err := credentialsFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid login request")
		writeError(w, err)
		return
	}

	principal, err := h.services.CredentialVerifier.Authenticate(ctx, credentials.Login, credentials.Password)
	if err != nil {
		log.Err(err).Str("login", credentials.Login).Msg("login failed")
		writeError(w, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, principal)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, err)
		return
	}

	log.Debug().Str("login", principal.LoginName).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, principal, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		http.Error(w, app.MsgUnauthorized, http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, principal, http.StatusOK)
}

// credentialsFromRequest reads a login/password pair from HTTP Basic auth,
// a urlencoded or multipart form, or a JSON body, in that order.
func credentialsFromRequest(r *http.Request) (models.Credentials, error) {
	if login, password, ok := r.BasicAuth(); ok {
		return models.Credentials{Login: login, Password: password}, nil
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseMultipartForm(1 << 20); err != nil && err != http.ErrNotMultipart {
			return models.Credentials{}, fmt.Errorf("%w: %w", ErrMalformedLoginRequest, err)
		}
		return models.Credentials{
			Login:    r.PostFormValue(formLoginField),
			Password: r.PostFormValue(formPasswordField),
		}, nil
	}

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		return models.Credentials{}, fmt.Errorf("%w: %w", ErrMalformedLoginRequest, err)
	}

	return credentials, nil
}
