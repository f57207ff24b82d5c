package http

import (
	"net/http"

	"github.com/finbank/finbank-api/internal/app"
	"github.com/finbank/finbank-api/internal/logger"
	"github.com/finbank/finbank-api/models"
	"github.com/go-chi/chi/v5"
)

// login checks the credentials, sets the access, refresh and logged_in
// cookies and returns the user summary.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err, internalError(app.MsgLoginFailed))
		return
	}

	user, session, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, internalError(app.MsgLoginFailed))
		return
	}

	h.cookies.setSession(w, session)
	log.Info().Str("user_id", user.ID.String()).Msg("user logged in")

	writeJSON(w, r, models.AuthResponse{Message: app.MsgLoginSuccessful, User: user.Summary()}, http.StatusOK)
}

// refresh exchanges the refresh token cookie for a new access token.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, accessToken, err := h.services.AuthService.Refresh(r.Context(), cookieValue(r, cookieRefreshToken))
	if err != nil {
		h.writeError(w, r, err, internalError(app.MsgFailedToRefreshAccessToken), refreshTokenErrors)
		return
	}

	h.cookies.setAccess(w, accessToken)
	log.Info().Str("user_id", user.ID.String()).Msg("access token refreshed")

	writeJSON(w, r, models.AuthResponse{Message: app.MsgAccessTokenRefreshed, User: user.Summary()}, http.StatusOK)
}

// logout clears the session cookies. It needs no valid session and can be
// called any number of times.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.cookies.clear(w)
	logger.FromRequest(r).Info().Msg("user logged out")

	writeJSON(w, r, models.MessageResponse{Message: app.MsgLoggedOut}, http.StatusOK)
}

// requestPasswordReset always answers with the same message, so the
// response does not reveal whether the email is registered.
func (h *Handler) requestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordResetRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err, internalError(app.MsgFailedPasswordResetRequest))
		return
	}

	if err := h.services.PasswordResetService.RequestPasswordReset(r.Context(), req.Email); err != nil {
		h.writeError(w, r, err, internalError(app.MsgFailedPasswordResetRequest))
		return
	}

	writeJSON(w, r, models.MessageResponse{Message: app.MsgPasswordResetRequested}, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordResetConfirmRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err, internalError(app.MsgFailedToResetPassword))
		return
	}

	token := chi.URLParam(r, "token")
	if err := h.services.PasswordResetService.ResetPassword(r.Context(), token, req); err != nil {
		h.writeError(w, r, err, internalError(app.MsgFailedToResetPassword))
		return
	}

	writeJSON(w, r, models.MessageResponse{Message: app.MsgPasswordResetSuccessful}, http.StatusOK)
}
