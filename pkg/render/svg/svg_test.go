package svg

import (
	"strings"
	"testing"

	"github.com/syntree-dev/syntree/pkg/layout"
	"github.com/syntree-dev/syntree/pkg/render"
)

func TestCanvasDocument(t *testing.T) {
	cfg := layout.DefaultConfig()
	c := New(200, 100, cfg)
	c.Text(100, 10, "NP", render.InkLabel)
	c.Text(100, 50, "the dog", render.InkText)
	c.Line(100, 30, 100, 44, render.InkLine)
	c.Curve(50, 80, 75, 95, 100, 80, render.InkMovement)
	c.Polygon([]render.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8}}, true, render.InkMovement)
	out := string(c.Finish())

	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Error("missing svg header")
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Error("document not closed")
	}
	if !strings.Contains(out, `viewBox="0 0 200.0 100.0"`) {
		t.Error("missing viewBox")
	}
	if !strings.Contains(out, `fill="white"`) {
		t.Error("missing white background")
	}
	if !strings.Contains(out, `text-anchor="middle"`) {
		t.Error("text must be centered")
	}
	if !strings.Contains(out, `font-style="italic"`) {
		t.Error("terminal text must be italic")
	}
	if !strings.Contains(out, `Q 75.0 95.0 100.0 80.0`) {
		t.Error("missing quadratic path")
	}
	if !strings.Contains(out, `<polygon points="0.0,0.0 10.0,0.0 5.0,8.0"`) {
		t.Error("missing polygon")
	}
}

func TestCanvasColorModes(t *testing.T) {
	cfg := layout.DefaultConfig()
	c := New(10, 10, cfg)
	c.Text(5, 0, "S", render.InkLabel)
	if out := string(c.Finish()); !strings.Contains(out, `fill="#204090"`) {
		t.Error("color mode must use the label color")
	}

	cfg.Color = false
	c = New(10, 10, cfg)
	c.Text(5, 0, "S", render.InkLabel)
	c.Line(0, 0, 5, 5, render.InkLine)
	out := string(c.Finish())
	if strings.Contains(out, "#204090") || strings.Contains(out, "#902020") {
		t.Error("monochrome mode must not emit palette colors")
	}
	if !strings.Contains(out, `fill="black"`) {
		t.Error("monochrome text must be black")
	}
}

func TestCanvasEscapesText(t *testing.T) {
	c := New(10, 10, layout.DefaultConfig())
	c.Text(5, 0, "<NP> & friends", render.InkLabel)
	out := string(c.Finish())

	if strings.Contains(out, "<NP> & friends") {
		t.Error("text content must be XML escaped")
	}
	if !strings.Contains(out, "&lt;NP&gt; &amp; friends") {
		t.Errorf("escaped text missing from output:\n%s", out)
	}
}

func TestPolygonStrokeVsFill(t *testing.T) {
	c := New(10, 10, layout.DefaultConfig())
	pts := []render.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 3}}
	c.Polygon(pts, false, render.InkLine)
	out := string(c.Finish())

	if !strings.Contains(out, `fill="none"`) {
		t.Error("stroked polygon must not be filled")
	}
}
