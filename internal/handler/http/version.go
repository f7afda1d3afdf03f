package http

import (
	"net/http"

	"github.com/MKhiriev/go-roster-bot/internal/utils"
)

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	utils.WriteText(w, version, http.StatusOK)
}
