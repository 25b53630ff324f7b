package server

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up the application-wide routes and boots every module
// so it can mount its own routes.
func (s *Server) RegisterRoutes(ctx context.Context) error {
	s.E.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/mypage")
	})

	s.E.GET("/static/*", staticHandler(s.Static))

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	return s.Boot(ctx)
}
