package app

import (
	"fmt"

	"github.com/samber/do/v2"

	"github.com/nfrund/flightdesk/internal/backend"
	"github.com/nfrund/flightdesk/internal/config"
	"github.com/nfrund/flightdesk/internal/domain"
	"github.com/nfrund/flightdesk/internal/identity"
	"github.com/nfrund/flightdesk/internal/middleware"
	"github.com/nfrund/flightdesk/internal/module"
	"github.com/nfrund/flightdesk/internal/rendering"
)

// NewContainer provides the core services the modules depend on and lets
// every module register its own. The server and the CLI share it.
func NewContainer(cfg *config.Config, modules []module.Module) (do.Injector, error) {
	i := do.New()

	do.ProvideValue(i, cfg)
	do.ProvideValue[middleware.TokenSource](i, middleware.SessionTokenSource{})
	do.ProvideValue[rendering.Renderer](i, rendering.NewUniversalRenderer())

	do.Provide(i, func(i do.Injector) (domain.ReservationAPI, error) {
		client, err := backend.NewClient(cfg.APIBaseURL, cfg.APITimeout)
		if err != nil {
			return nil, err
		}
		return client, nil
	})
	do.Provide(i, func(i do.Injector) (*identity.Resolver, error) {
		return identity.NewResolver(cfg.JWTSecret), nil
	})
	do.Provide(i, func(i do.Injector) (middleware.IdentityResolver, error) {
		resolver, err := do.Invoke[*identity.Resolver](i)
		if err != nil {
			return nil, err
		}
		return resolver, nil
	})

	for _, m := range modules {
		if err := m.Register(i); err != nil {
			return nil, fmt.Errorf("register module %s: %w", m.Name(), err)
		}
	}
	return i, nil
}
