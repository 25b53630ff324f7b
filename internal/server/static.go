package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"

	"github.com/nfrund/flightdesk/web"
)

// StaticFS returns the filesystem the /static route serves: dir on disk when
// set, the embedded assets otherwise.
func StaticFS(dir string) afero.Fs {
	if dir != "" {
		return afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), dir))
	}
	return web.Static()
}

// staticHandler serves files from fs under the /static/ prefix.
func staticHandler(fs afero.Fs) echo.HandlerFunc {
	files := http.FileServer(afero.NewHttpFs(fs).Dir("/"))
	return echo.WrapHandler(http.StripPrefix("/static/", files))
}
