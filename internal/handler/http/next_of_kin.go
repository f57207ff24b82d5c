package http

import (
	"net/http"

	"github.com/finbank/finbank-api/internal/app"
	"github.com/finbank/finbank-api/models"
)

func (h *Handler) createNextOfKin(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err, internalError(app.MsgFailedToCreateNextOfKin))
		return
	}

	var req models.NextOfKinCreateRequest
	if err = decodeBody(r, &req); err != nil {
		h.writeError(w, r, err, internalError(app.MsgFailedToCreateNextOfKin))
		return
	}

	kin, err := h.services.NextOfKinService.CreateNextOfKin(r.Context(), user.ID, req)
	if err != nil {
		h.writeError(w, r, err, internalError(app.MsgFailedToCreateNextOfKin))
		return
	}

	writeJSON(w, r, kin, http.StatusCreated)
}

// listNextOfKin returns the user's next of kin, primary first. An empty
// list is returned as [].
func (h *Handler) listNextOfKin(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err, internalError(app.MsgFailedToFetchNextOfKin))
		return
	}

	kins, err := h.services.NextOfKinService.ListNextOfKin(r.Context(), user.ID)
	if err != nil {
		h.writeError(w, r, err, internalError(app.MsgFailedToFetchNextOfKin))
		return
	}

	writeJSON(w, r, kins, http.StatusOK)
}
