package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/flightdesk/internal/view"
)

const (
	// HTMXScript is the htmx build the pages load.
	HTMXScript = "https://unpkg.com/htmx.org@2.0.4"

	siteName   = "Flightdesk"
	stylesheet = "/static/mypage.css"
)

// Base wraps page content in the HTML document shared by every page.
func Base(title, lang string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		doc := h.Doctype(
			h.HTML(
				h.Lang(lang),
				h.Head(
					h.Meta(h.Charset("utf-8")),
					h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
					h.TitleEl(g.Text(pageTitle(title))),
					h.Link(h.Rel("stylesheet"), h.Href(stylesheet)),
					h.Script(h.Src(HTMXScript), h.Defer()),
				),
				h.Body(
					h.Main(view.AdaptTemplToGomponent(ctx, content)),
				),
			),
		)
		return doc.Render(w)
	})
}

func pageTitle(title string) string {
	if title != "" {
		return title + " - " + siteName
	}
	return siteName
}
