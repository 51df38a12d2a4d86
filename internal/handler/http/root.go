package http

import (
	"net/http"

	"github.com/MKhiriev/go-api-gateway/internal/utils"
)

func (h *Handler) getBuildInfo(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetBuildInfo(r.Context())

	utils.WriteJSON(w, info.Response(), http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	payload, err := h.services.HealthService.Check(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	relay(w, r, payload)
}
