package dot

import (
	"strings"
	"testing"

	"github.com/syntree-dev/syntree/pkg/syntax"
)

func TestToDOT(t *testing.T) {
	root := syntax.Parse("[S [NP the dog] [VP barks]]")
	root.Link()
	out := ToDOT(root)

	if !strings.HasPrefix(out, "digraph syntree {") {
		t.Error("missing digraph header")
	}
	if !strings.HasSuffix(out, "}\n") {
		t.Error("graph not closed")
	}
	for _, label := range []string{`label="S"`, `label="NP"`, `label="the dog"`, `label="barks"`} {
		if !strings.Contains(out, label) {
			t.Errorf("missing node %s", label)
		}
	}

	// Terminals are boxes, constituents plain.
	if !strings.Contains(out, "shape=box") {
		t.Error("terminals must render as boxes")
	}
	if !strings.Contains(out, "shape=none") {
		t.Error("constituents must render without a shape")
	}

	// Four child edges: S->NP, S->VP, NP->leaf, VP->leaf.
	if got := strings.Count(out, " -> "); got != 4 {
		t.Errorf("edge count = %d, want 4", got)
	}
}

func TestToDOTMovementEdges(t *testing.T) {
	root := syntax.Parse("[S [NP_1 what] [VP t <1>]]")
	root.Link()
	out := ToDOT(root)

	if !strings.Contains(out, "style=dashed, constraint=false") {
		t.Error("missing dashed movement edge")
	}
}

func TestToDOTUnmatchedTailHasNoEdge(t *testing.T) {
	root := syntax.Parse("[S [NP t <9>]]")
	root.Link()
	out := ToDOT(root)

	if strings.Contains(out, "style=dashed") {
		t.Error("unmatched tails must not produce movement edges")
	}
}

func TestRenderSVG(t *testing.T) {
	root := syntax.Parse("[S [NP the dog] [VP barks]]")
	root.Link()

	out, err := RenderSVG(ToDOT(root))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	svg := string(out)
	if !strings.Contains(svg, "<svg") {
		t.Error("output is not an SVG document")
	}
	for _, text := range []string{"the dog", "barks"} {
		if !strings.Contains(svg, text) {
			t.Errorf("SVG missing terminal %q", text)
		}
	}
}

func TestRenderPNG(t *testing.T) {
	root := syntax.Parse("[NP dog]")
	root.Link()

	out, err := RenderPNG(ToDOT(root))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	if len(out) < 8 || string(out[1:4]) != "PNG" {
		t.Error("output is not a PNG image")
	}
}

func TestRenderRejectsInvalidDOT(t *testing.T) {
	if _, err := RenderSVG("digraph {"); err == nil {
		t.Error("malformed DOT must fail")
	}
}
