package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/flightdesk/internal/identity"
	"github.com/nfrund/flightdesk/internal/middleware"
	"github.com/nfrund/flightdesk/internal/testutils"
)

func newBackend(t *testing.T) *testutils.Backend {
	t.Helper()
	b := testutils.NewBackend(t)
	b.Users["traveler01"] = `[{"email":"jin@example.com","userFirstName":"Jin","userLastName":"Park",` +
		`"phone":"01012345678","birthday":"1990-03-07","address":"Seoul"}]`
	b.Reservations["traveler01"] = `[{"id":7,"flight":{"aircraftType":"A380","departureName":"ICN",` +
		`"arrivalName":"NRT","departureTime":"2024-05-01T09:00:00"},"selectedSeats":["12A","12B"]}]`
	return b
}

func setupServer(t *testing.T, apiURL string) *Server {
	t.Helper()
	s, err := NewWithConfig(testutils.ConfigForTests(t, apiURL))
	require.NoError(t, err)
	return s
}

func TestServer_EndToEnd(t *testing.T) {
	backend := newBackend(t)
	s := setupServer(t, backend.URL)
	require.NoError(t, s.RegisterRoutes(context.Background()))

	token, err := identity.Issue("any-signing-key", "traveler01", time.Hour)
	require.NoError(t, err)

	t.Run("content renders profile and reservations", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/mypage/content", nil)
		req.AddCookie(&http.Cookie{Name: middleware.TokenCookieName, Value: token})
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "jin@example.com")
		assert.Contains(t, body, "Jin Park")
		assert.Contains(t, body, "010-1234-5678")
		assert.Contains(t, body, "1990년 3월 7일")
		assert.Contains(t, body, `data-reservation-id="7"`)
		assert.Contains(t, body, "2024-05-01")
		assert.Contains(t, body, "12A, 12B")
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	})

	t.Run("anonymous visitor is sent to login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/mypage", nil)
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("root redirects to my page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/mypage", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("health", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("embedded stylesheet is served", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/static/mypage.css", nil)
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/css")
	})
}

func TestServer_StaticFromFs(t *testing.T) {
	s := setupServer(t, "http://api.example.test")
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/extra.css", []byte("body{}"), 0o644))
	s.Static = fs
	require.NoError(t, s.RegisterRoutes(context.Background()))

	req := httptest.NewRequest(http.MethodGet, "/static/extra.css", nil)
	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body{}", rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/static/missing.css", nil)
	rec = httptest.NewRecorder()
	s.E.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_ReservationsFailureKeepsProfile(t *testing.T) {
	backend := newBackend(t)
	backend.FailReservations = true
	s := setupServer(t, backend.URL)
	require.NoError(t, s.RegisterRoutes(context.Background()))

	token, err := identity.Issue("any-signing-key", "traveler01", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/mypage/content", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "jin@example.com")
	assert.Contains(t, rec.Body.String(), "empty-reservations")
}

func TestNewWithConfig_InvalidBaseURL(t *testing.T) {
	cfg := testutils.ConfigForTests(t, "")
	cfg.APIBaseURL = "/relative"
	s, err := NewWithConfig(cfg)
	require.NoError(t, err)
	// The backend client is built lazily, when the module boots.
	assert.Error(t, s.RegisterRoutes(context.Background()))
}

func TestHTTPErrorHandler_WithStackTrace(t *testing.T) {
	e := echo.New()

	var logBuffer bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuffer, &slog.HandlerOptions{AddSource: true}))
	originalLogger := slog.Default()
	slog.SetDefault(logger)
	defer slog.SetDefault(originalLogger)

	setupErrorHandling(e)

	e.GET("/test-unhandled-error", func(c echo.Context) error {
		return errors.New("a deliberate unhandled error occurred")
	})

	req := httptest.NewRequest(http.MethodGet, "/test-unhandled-error", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	logOutput := logBuffer.String()
	assert.Contains(t, logOutput, "Internal Server Error (Unhandled)")
	assert.Contains(t, logOutput, `error="a deliberate unhandled error occurred"`)
	assert.Contains(t, logOutput, "stack_trace=")
	assert.Contains(t, logOutput, "runtime/debug/stack.go")
	assert.Contains(t, logOutput, "internal/server/server_test.go")
}

func TestHTTPErrorHandler_KnownErrorsPassThrough(t *testing.T) {
	e := echo.New()
	setupErrorHandling(e)

	req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
