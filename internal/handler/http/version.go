package http

import (
	"net/http"

	"github.com/MKhiriev/go-users-api/internal/utils"
)

const appVersionHeader = "X-App-Version"

// getServerVersion serves the build information. The version alone is also
// sent as X-App-Version.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	w.Header().Set(appVersionHeader, h.services.AppInfoService.GetAppVersion(ctx))
	utils.WriteJSON(w, h.services.AppInfoService.GetBuildInfo(ctx), http.StatusOK)
}
