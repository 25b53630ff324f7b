package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"

	"github.com/nfrund/flightdesk/internal/app"
	"github.com/nfrund/flightdesk/internal/config"
	"github.com/nfrund/flightdesk/internal/logging"
	appmiddleware "github.com/nfrund/flightdesk/internal/middleware"
	"github.com/nfrund/flightdesk/internal/module"
	"github.com/nfrund/flightdesk/internal/rendering"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      *config.Config
	Injector do.Injector
	Static   afero.Fs
	modules  []module.Module
}

// New creates a Server from the environment. It exits the process when the
// configuration or the module wiring is unusable.
func New() *Server {
	logging.New() // Initialize the structured logger
	cfg := config.New()

	s, err := NewWithConfig(cfg)
	if err != nil {
		slog.Error("Failed to initialize server", "error", err)
		os.Exit(1)
	}
	return s
}

// NewWithConfig creates a Server and registers every module's services.
func NewWithConfig(cfg *config.Config) (*Server, error) {
	modules := app.NewModules()
	injector, err := app.NewContainer(cfg, modules)
	if err != nil {
		return nil, err
	}
	renderer, err := do.Invoke[rendering.Renderer](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve renderer: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	setupErrorHandling(e)

	e.Use(appmiddleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(appmiddleware.Logger)

	// The auth service shares this cookie store; the access token lives in it.
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
	}
	e.Use(session.Middleware(store))

	e.Renderer = renderer

	return &Server{
		E:        e,
		Cfg:      cfg,
		Injector: injector,
		Static:   StaticFS(cfg.StaticDir),
		modules:  modules,
	}, nil
}

// Boot mounts every module under its own prefix.
func (s *Server) Boot(ctx context.Context) error {
	for _, m := range s.modules {
		if err := m.Boot(ctx, s.E.Group("/"+m.Name()), s.Injector); err != nil {
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
		slog.Debug("module booted", "module", m.Name())
	}
	return nil
}
