package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/nfrund/flightdesk/internal/domain"
	"github.com/nfrund/flightdesk/internal/i18n"
	"github.com/nfrund/flightdesk/internal/view"
)

const (
	// IdentityContextKey holds the *Identity of the current visitor.
	IdentityContextKey = "identity"

	// TokenSessionName and TokenSessionKey locate the access token that the
	// auth service stores in the shared session.
	TokenSessionName = "auth-session"
	TokenSessionKey  = "access_token"

	// TokenCookieName is the plain cookie fallback for the access token.
	TokenCookieName = "auth_token"
)

// Identity is the resolved visitor of a request.
type Identity struct {
	UserID string
	Token  string
}

// TokenSource gives read-only access to the externally owned access token.
type TokenSource interface {
	AccessToken(c echo.Context) string
}

// IdentityResolver turns an access token into a user identifier.
type IdentityResolver interface {
	Resolve(token string) (string, error)
}

// SessionTokenSource reads the access token from the auth session, then the
// auth_token cookie, then an Authorization bearer header.
type SessionTokenSource struct{}

// AccessToken implements TokenSource.
func (SessionTokenSource) AccessToken(c echo.Context) string {
	if sess, err := session.Get(TokenSessionName, c); err == nil {
		if token, ok := sess.Values[TokenSessionKey].(string); ok && token != "" {
			return token
		}
	}
	if cookie, err := c.Cookie(TokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if auth := c.Request().Header.Get(echo.HeaderAuthorization); len(auth) > 7 && strings.EqualFold(auth[:7], "Bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

// RequireIdentity protects routes that need a logged-in user. Visitors without
// a usable token are sent to loginPath with a notice flashed for the login
// page; nothing downstream runs for them.
func RequireIdentity(src TokenSource, resolver IdentityResolver, loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := src.AccessToken(c)
			userID, err := resolver.Resolve(token)
			if err != nil {
				if !domain.IsUnauthenticated(err) {
					return err
				}
				FromContext(c.Request().Context()).Debug("redirecting unauthenticated visitor", "reason", err)
				p := i18n.For(c.Request().Header.Get("Accept-Language"))
				view.SetFlash(c, view.FlashNotice, p.T(i18n.LoginRequired))
				return Navigate(c, loginPath)
			}

			c.Set(IdentityContextKey, &Identity{UserID: userID, Token: token})
			return next(c)
		}
	}
}

// Navigate sends the browser to path. htmx requests get an HX-Redirect header
// so the whole page moves instead of a swapped fragment.
func Navigate(c echo.Context, path string) error {
	if c.Request().Header.Get("HX-Request") == "true" {
		c.Response().Header().Set("HX-Redirect", path)
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, path)
}

// IdentityFrom returns the identity stored by RequireIdentity.
func IdentityFrom(c echo.Context) (*Identity, bool) {
	id, ok := c.Get(IdentityContextKey).(*Identity)
	if !ok || id == nil {
		slog.Debug("no identity on request context", "path", c.Path())
		return nil, false
	}
	return id, true
}
