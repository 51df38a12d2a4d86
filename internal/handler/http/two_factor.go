package http

import (
	"net/http"

	"github.com/MKhiriev/go-api-gateway/internal/utils"
	"github.com/MKhiriev/go-api-gateway/models"
)

// generateQR answers 201 with the image wrapped in a JSON envelope.
func (h *Handler) generateQR(w http.ResponseWriter, r *http.Request) {
	qr, err := h.services.TwoFactorService.GenerateQR(r.Context(), authorization(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, qr, http.StatusCreated)
}

func (h *Handler) turnOn2FA(w http.ResponseWriter, r *http.Request) {
	var code models.TwoFactorCode
	if !readBody(w, r, &code) {
		return
	}

	payload, err := h.services.TwoFactorService.TurnOn(r.Context(), authorization(r), code)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	relay(w, r, payload)
}

func (h *Handler) authenticate2FA(w http.ResponseWriter, r *http.Request) {
	var code models.TwoFactorCode
	if !readBody(w, r, &code) {
		return
	}

	payload, err := h.services.TwoFactorService.Authenticate(r.Context(), authorization(r), code)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	relay(w, r, payload)
}
