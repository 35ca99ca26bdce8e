package http

import (
	"net/http"

	"github.com/MKhiriev/project-elevate/internal/app"
	"github.com/MKhiriev/project-elevate/internal/utils"
)

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, app.MsgAPIBanner, http.StatusOK)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}
