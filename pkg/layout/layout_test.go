package layout

import (
	"testing"

	"github.com/syntree-dev/syntree/pkg/syntax"
)

// runeMeasurer charges a fixed width per rune, keeping expected geometry
// easy to compute by hand.
type runeMeasurer struct {
	perRune float64
}

func (m runeMeasurer) Width(text string, terminal bool) float64 {
	return float64(len([]rune(text))) * m.perRune
}

func testEngine(cfg Config) *Engine {
	return New(cfg, runeMeasurer{perRune: 10})
}

func layoutSource(t *testing.T, src string, cfg Config) *syntax.Node {
	t.Helper()
	root := syntax.Parse(src)
	root.Link()
	testEngine(cfg).Layout(root)
	return root
}

func TestMeasureHalfWidths(t *testing.T) {
	// "the dog" is 70px wide, "barks" 50px; with HGap 16 the root step is
	// 35 + 16 + 25 = 76 and the span on each side is 38.
	root := layoutSource(t, "[S [NP the dog] [VP barks]]", DefaultConfig())

	np, vp := root.Children[0], root.Children[1]
	if np.LeftWidth != 35 || np.RightWidth != 35 {
		t.Errorf("NP half-widths = (%v, %v), want (35, 35)", np.LeftWidth, np.RightWidth)
	}
	if vp.LeftWidth != 25 || vp.RightWidth != 25 {
		t.Errorf("VP half-widths = (%v, %v), want (25, 25)", vp.LeftWidth, vp.RightWidth)
	}
	if root.Step != 76 {
		t.Errorf("root.Step = %v, want 76", root.Step)
	}
	if root.LeftWidth != 73 || root.RightWidth != 63 {
		t.Errorf("root half-widths = (%v, %v), want (73, 63)", root.LeftWidth, root.RightWidth)
	}
}

func TestMeasureLabelWidthFloor(t *testing.T) {
	// A label wider than its children sets the half-width floor.
	root := layoutSource(t, "[VERYLONGLABEL x]", DefaultConfig())
	if root.LeftWidth != 65 || root.RightWidth != 65 {
		t.Errorf("half-widths = (%v, %v), want (65, 65)", root.LeftWidth, root.RightWidth)
	}
}

func TestPlaceCoordinates(t *testing.T) {
	cfg := DefaultConfig()
	root := layoutSource(t, "[S [NP the dog] [VP barks]]", cfg)

	// Root anchors at Margin + LeftWidth, floored plus the half-pixel
	// antialias offset.
	if root.X != 88.5 || root.Y != 15.5 {
		t.Errorf("root at (%v, %v), want (88.5, 15.5)", root.X, root.Y)
	}

	np, vp := root.Children[0], root.Children[1]
	if np.X != 50.5 || vp.X != 126.5 {
		t.Errorf("children at x %v and %v, want 50.5 and 126.5", np.X, vp.X)
	}
	if np.Y != 55.5 || vp.Y != 55.5 {
		t.Errorf("children at y %v and %v, want 55.5", np.Y, vp.Y)
	}
}

func TestSoleChildTerminalCollapse(t *testing.T) {
	cfg := DefaultConfig()
	root := layoutSource(t, "[S [NP the dog] [VP barks]]", cfg)

	// A sole-child terminal sits directly under its parent's text instead
	// of a full level down: PadTop + PadBottom + FontSize = 26 below.
	leaf := root.Children[0].Children[0]
	if leaf.Y != 81.5 {
		t.Errorf("collapsed terminal y = %v, want 81.5", leaf.Y)
	}

	cfg.TerminalLines = true
	root = layoutSource(t, "[S [NP the dog] [VP barks]]", cfg)
	leaf = root.Children[0].Children[0]
	if leaf.Y != 95.5 {
		t.Errorf("terminal y with connector lines = %v, want 95.5", leaf.Y)
	}
}

func TestTriangleMarking(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want map[string]bool
	}{
		{
			name: "starred parent",
			src:  "[S [NP^ the dog] [VP barks]]",
			want: map[string]bool{"the dog": true, "barks": false},
		},
		{
			name: "starred grandparent",
			src:  "[S^ [NP [D the]]]",
			want: map[string]bool{"the": true},
		},
		{
			name: "no stars",
			src:  "[S [NP the dog]]",
			want: map[string]bool{"the dog": false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := layoutSource(t, tt.src, DefaultConfig())
			root.Walk(func(n *syntax.Node) {
				want, ok := tt.want[n.Text]
				if !ok || !n.IsLeaf() {
					return
				}
				if n.Triangle != want {
					t.Errorf("leaf %q Triangle = %v, want %v", n.Text, n.Triangle, want)
				}
			})
		})
	}
}

func TestTriangleLeafDoesNotCollapse(t *testing.T) {
	// A triangle leaf keeps its full level even as a sole child.
	root := layoutSource(t, "[S [NP^ the dog] [VP barks]]", DefaultConfig())
	leaf := root.Children[0].Children[0]
	if leaf.Y != 95.5 {
		t.Errorf("triangle leaf y = %v, want 95.5", leaf.Y)
	}
}

func TestDepth(t *testing.T) {
	root := layoutSource(t, "[S [NP the dog] [VP barks]]", DefaultConfig())

	if root.MaxY != 81.5 {
		t.Errorf("root.MaxY = %v, want 81.5", root.MaxY)
	}
	np := root.Children[0]
	if np.MaxY != 81.5 {
		t.Errorf("NP.MaxY = %v, want 81.5", np.MaxY)
	}
	leaf := np.Children[0]
	if leaf.MaxY != leaf.Y {
		t.Errorf("leaf.MaxY = %v, want its own y %v", leaf.MaxY, leaf.Y)
	}
}
