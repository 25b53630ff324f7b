package mypage

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"

	"github.com/nfrund/flightdesk/internal/config"
	"github.com/nfrund/flightdesk/internal/domain"
	"github.com/nfrund/flightdesk/internal/middleware"
	"github.com/nfrund/flightdesk/internal/module"
)

// Module mounts My Page.
type Module struct {
	module.BaseModule
	handler *Handler
}

// New creates the module.
func New() *Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "mypage"
}

// Register provides the Loader, built on the backend API in the container.
func (m *Module) Register(i do.Injector) error {
	do.Provide(i, func(i do.Injector) (*Loader, error) {
		api, err := do.Invoke[domain.ReservationAPI](i)
		if err != nil {
			return nil, err
		}
		return NewLoader(api), nil
	})
	return nil
}

// Boot wires the routes. Every route requires a resolvable identity.
func (m *Module) Boot(ctx context.Context, group *echo.Group, i do.Injector) error {
	cfg, err := do.Invoke[*config.Config](i)
	if err != nil {
		return fmt.Errorf("mypage: %w", err)
	}
	loader, err := do.Invoke[*Loader](i)
	if err != nil {
		return fmt.Errorf("mypage: %w", err)
	}
	tokens, err := do.Invoke[middleware.TokenSource](i)
	if err != nil {
		return fmt.Errorf("mypage: %w", err)
	}
	resolver, err := do.Invoke[middleware.IdentityResolver](i)
	if err != nil {
		return fmt.Errorf("mypage: %w", err)
	}

	m.handler = NewHandler(loader, "/"+m.Name(), cfg.LoginPath, cfg.EditProfilePath)
	requireIdentity := middleware.RequireIdentity(tokens, resolver, cfg.LoginPath)

	group.GET("", m.handler.Get, requireIdentity)
	group.GET("/content", m.handler.Content, requireIdentity, middleware.RateLimiter(cfg.RateLimit))
	group.POST("/edit", m.handler.EditProfile, requireIdentity)
	return nil
}
