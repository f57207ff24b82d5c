package http

import (
	"net/http"

	"github.com/finbank/finbank-api/internal/app"
	"github.com/finbank/finbank-api/models"
)

func (h *Handler) createProfile(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err, internalError(app.MsgFailedToCreateProfile))
		return
	}

	var req models.ProfileCreateRequest
	if err = decodeBody(r, &req); err != nil {
		h.writeError(w, r, err, internalError(app.MsgFailedToCreateProfile))
		return
	}

	profile, err := h.services.ProfileService.CreateProfile(r.Context(), user.ID, req)
	if err != nil {
		h.writeError(w, r, err, internalError(app.MsgFailedToCreateProfile))
		return
	}

	writeJSON(w, r, profile, http.StatusCreated)
}

// updateProfile applies a partial update. Only the fields present in the
// body are written; image URLs are managed by the upload flow.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err, internalError(app.MsgFailedToUpdateProfile))
		return
	}

	var req models.ProfileUpdateRequest
	if err = decodeBody(r, &req); err != nil {
		h.writeError(w, r, err, internalError(app.MsgFailedToUpdateProfile))
		return
	}

	profile, err := h.services.ProfileService.UpdateProfile(r.Context(), user.ID, req)
	if err != nil {
		h.writeError(w, r, err, internalError(app.MsgFailedToUpdateProfile))
		return
	}

	writeJSON(w, r, profile, http.StatusOK)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err, internalError(app.MsgFailedToFetchProfile))
		return
	}

	profile, err := h.services.ProfileService.GetProfile(r.Context(), user.ID)
	if err != nil {
		h.writeError(w, r, err, internalError(app.MsgFailedToFetchProfile))
		return
	}

	writeJSON(w, r, profile, http.StatusOK)
}
