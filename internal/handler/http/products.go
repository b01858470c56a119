package http

import (
	"net/http"

	"github.com/MKhiriev/go-member-auth/internal/app"
	"github.com/MKhiriev/go-member-auth/internal/logger"
	"github.com/MKhiriev/go-member-auth/internal/utils"
)

func (h *Handler) products(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	products, err := h.services.ProductService.FindAll(r.Context())
	if err != nil {
		log.Err(err).Msg("error listing products")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, products, http.StatusOK)
}

// mainPage greets the caller and lists the catalog.
func (h *Handler) mainPage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		http.Error(w, app.MsgUnauthorized, http.StatusUnauthorized)
		return
	}

	page, err := h.services.ProductService.MainPage(r.Context(), principal)
	if err != nil {
		log.Err(err).Msg("error building main page")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}
