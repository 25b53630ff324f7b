package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// nodeComponent renders a gomponents node as a templ.Component. A cancelled
// context stops the render before anything is written.
type nodeComponent struct {
	node g.Node
}

func (a nodeComponent) Render(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return a.node.Render(w)
}

// AdaptGomponentToTempl lets a gomponents view be passed wherever a
// templ.Component is expected, such as the page layout or the renderer.
func AdaptGomponentToTempl(node g.Node) templ.Component {
	return nodeComponent{node: node}
}

// AdaptTemplToGomponent embeds a templ.Component in a gomponents tree.
// Gomponents nodes render without a context, so the caller supplies the one
// the component should see.
func AdaptTemplToGomponent(ctx context.Context, component templ.Component) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		return component.Render(ctx, w)
	})
}
