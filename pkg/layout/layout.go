// Package layout computes pixel geometry for a parsed constituency tree:
// half-widths, sibling spacing, node coordinates, subtree depths, triangle
// decisions and movement-line routing.
//
// The engine mutates the layout fields of syntax.Node in three passes
// (triangles, widths bottom-up, coordinates top-down) plus a depth pass.
// Text measurement is an external capability supplied through Measurer so
// the engine stays independent of any font backend.
package layout

import (
	"math"

	"github.com/syntree-dev/syntree/pkg/syntax"
)

// Measurer reports the rendered pixel width of a piece of text. Terminal
// and nonterminal text may use different fonts.
type Measurer interface {
	Width(text string, terminal bool) float64
}

// Config is the geometric configuration bundle for one render.
type Config struct {
	// FontSize is the text height in pixels for both font classes.
	FontSize float64 `json:"font_size"`

	// VSpace is the vertical distance between tree levels.
	VSpace float64 `json:"v_space"`

	// HGap is the minimum horizontal gap between adjacent subtrees.
	HGap float64 `json:"h_gap"`

	// PadTop and PadBottom pad text above and below within a level.
	PadTop    float64 `json:"pad_top"`
	PadBottom float64 `json:"pad_bottom"`

	// Margin is the fixed canvas margin on all sides.
	Margin float64 `json:"margin"`

	// TerminalLines forces a connector line above every terminal. When
	// false, a sole-child terminal without a triangle is pulled up next
	// to its parent and the connector disappears.
	TerminalLines bool `json:"terminal_lines"`

	// Color enables the colored rendering mode.
	Color bool `json:"color"`
}

// DefaultConfig returns the standard render configuration.
func DefaultConfig() Config {
	return Config{
		FontSize:  16,
		VSpace:    40,
		HGap:      16,
		PadTop:    4,
		PadBottom: 6,
		Margin:    15,
		Color:     true,
	}
}

// Engine computes layout geometry for one tree at a time.
type Engine struct {
	cfg Config
	m   Measurer
}

// New creates an engine with the given configuration and text measurer.
func New(cfg Config, m Measurer) *Engine {
	return &Engine{cfg: cfg, m: m}
}

// Layout runs all geometry passes over a linked tree. The root is anchored
// at (Margin + root.LeftWidth, Margin); every node ends up with half-widths,
// step, coordinates and subtree depth filled in.
func (e *Engine) Layout(root *syntax.Node) {
	markTriangles(root)
	e.measure(root)
	e.place(root, e.cfg.Margin+root.LeftWidth, e.cfg.Margin)
	depth(root)
}

// markTriangles flags every leaf that has a starred ancestor. The decision
// is per-leaf and order independent.
func markTriangles(root *syntax.Node) {
	root.Walk(func(n *syntax.Node) {
		if !n.IsLeaf() {
			return
		}
		n.Triangle = false
		for a := n.Parent; a != nil; a = a.Parent {
			if a.Starred {
				n.Triangle = true
				return
			}
		}
	})
}

// measure computes half-widths bottom-up. Siblings are spaced uniformly:
// the step is the maximum requirement over adjacent child pairs, trading
// some width for visual regularity.
func (e *Engine) measure(n *syntax.Node) {
	if n.IsLeaf() {
		half := e.m.Width(n.Text, true) / 2
		n.LeftWidth = half
		n.RightWidth = half
		n.Step = 0
		return
	}

	for _, c := range n.Children {
		e.measure(c)
	}

	step := 0.0
	for i := 0; i < len(n.Children)-1; i++ {
		need := n.Children[i].RightWidth + e.cfg.HGap + n.Children[i+1].LeftWidth
		step = math.Max(step, need)
	}
	n.Step = step

	span := step * float64(len(n.Children)-1) / 2
	half := e.m.Width(n.Text, false) / 2
	n.LeftWidth = math.Max(span+n.First.LeftWidth, half)
	n.RightWidth = math.Max(span+n.Last.RightWidth, half)
}

// place assigns coordinates top-down. Anchors are floored with a half-pixel
// offset so single-pixel strokes land on pixel centers.
func (e *Engine) place(n *syntax.Node, x, y float64) {
	if n.IsLeaf() && n.Parent != nil && !e.cfg.TerminalLines &&
		len(n.Parent.Children) == 1 && !n.Triangle {
		// Sole-child terminal collapses against its parent; the
		// connector line disappears entirely.
		y = n.Parent.Y + e.cfg.PadTop + e.cfg.PadBottom + e.cfg.FontSize
	}
	n.X = math.Floor(x) + 0.5
	n.Y = math.Floor(y) + 0.5

	if n.IsLeaf() {
		return
	}
	startX := n.X - n.Step*float64(len(n.Children)-1)/2
	for i, c := range n.Children {
		e.place(c, startX+n.Step*float64(i), n.Y+e.cfg.VSpace)
	}
}

// depth computes, per node, the maximum y over the node and all of its
// descendants. Movement routing and canvas sizing both read this.
func depth(n *syntax.Node) float64 {
	n.MaxY = n.Y
	for _, c := range n.Children {
		n.MaxY = math.Max(n.MaxY, depth(c))
	}
	return n.MaxY
}
