package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-api-gateway/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	payload, err := h.services.UserService.List(r.Context(), authorization(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	relay(w, r, payload)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if !readBody(w, r, &user) {
		return
	}

	payload, err := h.services.UserService.Create(r.Context(), authorization(r), user)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	relay(w, r, payload)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	payload, err := h.services.UserService.Get(r.Context(), authorization(r), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	relay(w, r, payload)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var update models.UserUpdate
	if !readBody(w, r, &update) {
		return
	}

	payload, err := h.services.UserService.Update(r.Context(), authorization(r), chi.URLParam(r, "id"), update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	relay(w, r, payload)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	payload, err := h.services.UserService.Delete(r.Context(), authorization(r), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	relay(w, r, payload)
}
