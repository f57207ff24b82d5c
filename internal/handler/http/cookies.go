package http

import (
	"net/http"
	"time"

	"github.com/finbank/finbank-api/internal/config"
	"github.com/finbank/finbank-api/models"
)

const (
	cookieAccessToken  = string(models.TokenTypeAccess)
	cookieRefreshToken = string(models.TokenTypeRefresh)
	cookieLoggedIn     = "logged_in"
)

// cookieManager writes and clears the session cookies. All of them share
// path, SameSite and HttpOnly; Secure is off only in the local environment.
type cookieManager struct {
	path       string
	secure     bool
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func newCookieManager(auth config.Auth, app config.App) *cookieManager {
	path := auth.CookiePath
	if path == "" {
		path = "/"
	}
	return &cookieManager{
		path:       path,
		secure:     !app.IsLocal(),
		accessTTL:  auth.AccessTokenTTL,
		refreshTTL: auth.RefreshTokenTTL,
	}
}

func (c *cookieManager) cookie(name, value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     c.path,
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// setAccess sets the access token and the logged_in marker, which lives as
// long as the access token.
func (c *cookieManager) setAccess(w http.ResponseWriter, token models.Token) {
	http.SetCookie(w, c.cookie(cookieAccessToken, token.String(), c.accessTTL))
	http.SetCookie(w, c.cookie(cookieLoggedIn, "true", c.accessTTL))
}

func (c *cookieManager) setSession(w http.ResponseWriter, session models.Session) {
	c.setAccess(w, session.AccessToken)
	http.SetCookie(w, c.cookie(cookieRefreshToken, session.RefreshToken.String(), c.refreshTTL))
}

// clear expires all session cookies. A negative MaxAge is sent as Max-Age=0,
// which tells the browser to drop the cookie now.
func (c *cookieManager) clear(w http.ResponseWriter) {
	for _, name := range []string{cookieAccessToken, cookieRefreshToken, cookieLoggedIn} {
		cookie := c.cookie(name, "", 0)
		cookie.MaxAge = -1
		cookie.Expires = time.Unix(0, 0)
		http.SetCookie(w, cookie)
	}
}

// cookieValue returns the value of the named cookie or "".
func cookieValue(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}
