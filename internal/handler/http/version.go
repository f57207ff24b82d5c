package http

import (
	"net/http"

	"github.com/finbank/finbank-api/internal/app"
	"github.com/finbank/finbank-api/models"
)

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, models.MessageResponse{Message: app.MsgWelcome}, http.StatusOK)
}

// getServerVersion answers with the version as plain text.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(serverVersion)); err != nil {
		h.logger.Err(err).Msg("error writing version")
	}
}
