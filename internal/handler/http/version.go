package http

import (
	"net/http"

	"github.com/MKhiriev/go-courses-api/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	appVersion := h.services.AppInfoService.GetAppInfo(r.Context())

	utils.WriteJSON(w, appVersion, http.StatusOK)
}
