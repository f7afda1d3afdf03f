package http

import (
	"net/http"

	"github.com/MKhiriev/go-roster-bot/internal/utils"
	"github.com/MKhiriev/go-roster-bot/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	resp := models.HealthResponse{
		Status:     "ok",
		Version:    h.services.AppInfoService.GetAppVersion(r.Context()),
		RosterSize: h.services.RosterService.Size(),
		Users:      h.services.UserLogService.Count(),
	}

	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		h.logger.Err(err).Msg("error writing health response")
	}
}
