package web

import (
	"embed"

	"github.com/spf13/afero"
)

//go:embed static/*
var assets embed.FS

// Static returns the embedded stylesheets and scripts as a read-only
// filesystem rooted at the static directory.
func Static() afero.Fs {
	return afero.NewReadOnlyFs(afero.NewBasePathFs(afero.FromIOFS{FS: assets}, "static"))
}
