package http

import (
	"net/http"

	"github.com/finbank/finbank-api/internal/app"
	"github.com/finbank/finbank-api/internal/logger"
	"github.com/finbank/finbank-api/internal/utils"
	"github.com/finbank/finbank-api/models"
)

// auth is the guard of every protected route. It reads the access token
// cookie, lets [service.AuthService.Authenticate] resolve and validate the
// user, and stores the user in the request context with [utils.WithUser].
//
// Rejections:
//   - no cookie, expired, wrongly typed or undecodable token: 401
//   - unknown user: 404
//   - locked, inactive or pending account: 403
//   - anything else: 500
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		user, err := h.services.AuthService.Authenticate(ctx, cookieValue(r, cookieAccessToken))
		if err != nil {
			h.writeError(w, r, err, internalError(app.MsgAuthenticationFailed), accessTokenErrors)
			return
		}

		l := logger.FromRequest(r).WithUserID(user.ID.String())
		ctx = l.WithContext(utils.WithUser(ctx, user))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// currentUser returns the user stored by the auth middleware.
func currentUser(r *http.Request) (models.User, error) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		return models.User{}, ErrNoUserInContext
	}
	return user, nil
}
