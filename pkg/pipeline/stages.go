package pipeline

import (
	"github.com/syntree-dev/syntree/pkg/errors"
	"github.com/syntree-dev/syntree/pkg/fonts"
	"github.com/syntree-dev/syntree/pkg/layout"
	"github.com/syntree-dev/syntree/pkg/render"
	"github.com/syntree-dev/syntree/pkg/render/dot"
	"github.com/syntree-dev/syntree/pkg/render/raster"
	"github.com/syntree-dev/syntree/pkg/render/svg"
	"github.com/syntree-dev/syntree/pkg/syntax"
)

// Parse builds and links the tree for a source string. Parsing is
// permissive and never fails; malformed input degrades to a smaller tree.
func Parse(source string) *syntax.Node {
	root := syntax.Parse(source)
	root.Link()
	return root
}

// Layout runs the geometry passes and resolves movement lines. Text is
// measured with the production font faces; a measurement capability
// failure is fatal (no drawing surface).
func Layout(root *syntax.Node, cfg layout.Config) ([]*layout.Movement, error) {
	m, err := fonts.NewMeasurer(cfg.FontSize)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNoSurface, err, "load measurement faces")
	}
	layout.New(cfg, m).Layout(root)
	return layout.ResolveMovements(root, cfg), nil
}

// Render encodes the laid-out tree in one format.
func Render(root *syntax.Node, links []*layout.Movement, cfg layout.Config, format string) ([]byte, error) {
	switch format {
	case FormatPNG:
		w, h := render.Size(root, links, cfg)
		c, err := raster.New(w, h, cfg)
		if err != nil {
			return nil, err
		}
		render.Draw(c, root, links, cfg)
		return c.EncodePNG()

	case FormatSVG:
		w, h := render.Size(root, links, cfg)
		c := svg.New(w, h, cfg)
		render.Draw(c, root, links, cfg)
		return c.Finish(), nil

	case FormatDOT:
		return []byte(dot.ToDOT(root)), nil

	case FormatJSON:
		return render.Export(root, links, cfg).Marshal()

	default:
		return nil, ValidateFormat(format)
	}
}

// RenderGraph encodes the structural Graphviz view. Node positions come
// from Graphviz's layered layout, so the metric layout and the resolved
// movement clearances are not involved; movement pairs still appear as
// dashed edges.
func RenderGraph(root *syntax.Node, format string) ([]byte, error) {
	switch format {
	case FormatDOT:
		return []byte(dot.ToDOT(root)), nil

	case FormatSVG:
		return dot.RenderSVG(dot.ToDOT(root))

	case FormatPNG:
		return dot.RenderPNG(dot.ToDOT(root))

	case FormatJSON:
		return nil, errors.New(errors.ErrCodeUnsupported,
			"geometry export requires the metric layout; disable the graph view")

	default:
		return nil, ValidateFormat(format)
	}
}
