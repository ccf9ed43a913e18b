package render

import (
	"math"

	"github.com/syntree-dev/syntree/pkg/layout"
	"github.com/syntree-dev/syntree/pkg/syntax"
)

// Size returns the canvas dimensions for a laid-out tree. Width is the
// root's combined half-widths plus the margin on both sides; height covers
// the deepest text line plus one extra spacing unit when a movement curve
// bottoms out at the tree's max depth.
func Size(root *syntax.Node, links []*layout.Movement, cfg layout.Config) (w, h float64) {
	w = math.Ceil(root.LeftWidth + root.RightWidth + 2*cfg.Margin)
	h = math.Ceil(root.MaxY + cfg.FontSize + cfg.PadBottom + cfg.Margin)
	if layout.NeedsExtraHeight(links, root) {
		h += cfg.VSpace
	}
	return w, h
}

// Draw emits all operations for the tree and its movement lines onto c.
// The tree must be linked and laid out and the links resolved; Draw itself
// is deterministic and side-effect-free apart from the canvas calls.
func Draw(c Canvas, root *syntax.Node, links []*layout.Movement, cfg layout.Config) {
	root.Walk(func(n *syntax.Node) {
		drawNode(c, n, cfg)
	})
	for _, l := range links {
		if l.Drawable {
			drawMovement(c, l, cfg)
		}
	}
}

func drawNode(c Canvas, n *syntax.Node, cfg layout.Config) {
	ink := InkLabel
	if n.IsLeaf() {
		ink = InkText
	}
	c.Text(n.X, n.Y, n.Text, ink)

	if n.Parent == nil {
		return
	}

	switch {
	case n.Triangle:
		// Abbreviated constituent: a triangle from the parent's center
		// spanning the leaf text instead of a plain connector.
		c.Polygon([]Point{
			{X: n.Parent.X, Y: textBottom(n.Parent, cfg)},
			{X: n.X - n.LeftWidth, Y: n.Y - cfg.PadTop},
			{X: n.X + n.RightWidth, Y: n.Y - cfg.PadTop},
		}, false, InkLine)
	case collapsed(n, cfg):
		// Pulled directly under the parent; no connector.
	default:
		c.Line(n.Parent.X, textBottom(n.Parent, cfg), n.X, n.Y-cfg.PadTop, InkLine)
	}
}

// collapsed mirrors the layout engine's sole-child terminal rule.
func collapsed(n *syntax.Node, cfg layout.Config) bool {
	return n.IsLeaf() && !cfg.TerminalLines && !n.Triangle &&
		n.Parent != nil && len(n.Parent.Children) == 1
}

// drawMovement draws the two quadratic halves of a movement curve plus the
// arrowhead pointing at the head's trace position.
func drawMovement(c Canvas, l *layout.Movement, cfg layout.Config) {
	tx := l.Tail.X
	ty := l.Tail.MaxY + cfg.FontSize + cfg.PadBottom
	dx := l.DestX
	dy := l.DestY + cfg.FontSize + cfg.PadBottom
	by := l.BottomY + cfg.FontSize + cfg.PadBottom

	mx := (tx + dx) / 2
	inset := l.Dir.Sign() * math.Max(cfg.HGap*2, math.Abs(dx-tx)/4)

	c.Curve(tx, ty, tx+inset, by, mx, by, InkMovement)
	c.Curve(mx, by, dx-inset, by, dx, dy, InkMovement)

	as := cfg.FontSize / 4
	c.Polygon([]Point{
		{X: dx, Y: dy},
		{X: dx - as, Y: dy + as*1.6},
		{X: dx + as, Y: dy + as*1.6},
	}, true, InkMovement)
}

// textBottom is the y where a node's text line ends and connectors attach.
func textBottom(n *syntax.Node, cfg layout.Config) float64 {
	return n.Y + cfg.FontSize + cfg.PadBottom
}
