package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/flightdesk/internal/identity"
	"github.com/nfrund/flightdesk/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func setupAuthEcho(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(testSessionSecret))))

	protected := func(c echo.Context) error {
		id, ok := IdentityFrom(c)
		require.True(t, ok)
		return c.String(http.StatusOK, "Welcome "+id.UserID)
	}
	e.GET("/mypage", protected, RequireIdentity(SessionTokenSource{}, identity.NewResolver(""), "/login"))

	// Seeds the auth session the way the external auth service would.
	e.GET("/seed", func(c echo.Context) error {
		sess, err := session.Get(TokenSessionName, c)
		require.NoError(t, err)
		sess.Values[TokenSessionKey] = c.QueryParam("token")
		require.NoError(t, sess.Save(c.Request(), c.Response()))
		return c.NoContent(http.StatusOK)
	})
	return e
}

func issue(t *testing.T, userID string) string {
	t.Helper()
	token, err := identity.Issue(testSessionSecret, userID, time.Hour)
	require.NoError(t, err)
	return token
}

func TestRequireIdentity(t *testing.T) {
	e := setupAuthEcho(t)

	t.Run("visitor without token is redirected to login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/mypage", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))

		var flashed bool
		for _, c := range rec.Result().Cookies() {
			flashed = flashed || c.Name == view.FlashSessionName
		}
		assert.True(t, flashed, "login notice should be flashed")
	})

	t.Run("htmx visitor without token gets HX-Redirect", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/mypage", nil)
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("HX-Redirect"))
		assert.Empty(t, rec.Body.String())
	})

	t.Run("malformed token is redirected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/mypage", nil)
		req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: "this-is-an-invalid-token"})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
	})

	t.Run("cookie token passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/mypage", nil)
		req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: issue(t, "cookie-user")})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Welcome cookie-user", rec.Body.String())
	})

	t.Run("bearer token passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/mypage", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+issue(t, "header-user"))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Welcome header-user", rec.Body.String())
	})

	t.Run("session token wins over cookie", func(t *testing.T) {
		seedReq := httptest.NewRequest(http.MethodGet, "/seed?token="+issue(t, "session-user"), nil)
		seedRec := httptest.NewRecorder()
		e.ServeHTTP(seedRec, seedReq)
		require.Equal(t, http.StatusOK, seedRec.Code)

		req := httptest.NewRequest(http.MethodGet, "/mypage", nil)
		for _, c := range seedRec.Result().Cookies() {
			req.AddCookie(c)
		}
		req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: issue(t, "cookie-user")})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Welcome session-user", rec.Body.String())
	})
}

func TestRequestIDAndLogger(t *testing.T) {
	e := echo.New()
	e.Use(RequestID(), Logger)
	e.GET("/", func(c echo.Context) error {
		assert.NotNil(t, FromContext(c.Request().Context()))
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Len(t, rec.Header().Get(echo.HeaderXRequestID), 36)
}
