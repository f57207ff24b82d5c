// Package utils holds small helpers shared by the finbank packages:
// request context values, JSON bodies, password and token handling, the
// outbound HTTP client and id generation.
package utils

import (
	"context"

	"github.com/finbank/finbank-api/models"
)

type userKey struct{}

// WithUser returns a copy of ctx carrying the authenticated user.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// GetUserFromContext returns the user stored by WithUser. ok is false when
// the request never passed the auth guard.
func GetUserFromContext(ctx context.Context) (user models.User, ok bool) {
	user, ok = ctx.Value(userKey{}).(models.User)
	return user, ok
}
