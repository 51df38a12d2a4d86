package http

import (
	"net/http"

	"github.com/MKhiriev/go-api-gateway/models"
)

// Authentication endpoints are public: the caller's Authorization header is
// never read here.

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if !readBody(w, r, &user) {
		return
	}

	payload, err := h.services.AuthService.Register(r.Context(), user)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	relay(w, r, payload)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if !readBody(w, r, &credentials) {
		return
	}

	payload, err := h.services.AuthService.SignIn(r.Context(), credentials)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	relay(w, r, payload)
}

func (h *Handler) requestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordResetRequest
	if !readBody(w, r, &req) {
		return
	}

	payload, err := h.services.AuthService.RequestPasswordReset(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	relay(w, r, payload)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordReset
	if !readBody(w, r, &req) {
		return
	}

	payload, err := h.services.AuthService.ResetPassword(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	relay(w, r, payload)
}
