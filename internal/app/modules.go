package app

import (
	"github.com/nfrund/flightdesk/internal/module"
	"github.com/nfrund/flightdesk/internal/modules/mypage"
)

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules() []module.Module {
	return []module.Module{
		mypage.New(),
	}
}
