// Package svg implements the render.Canvas contract by assembling an SVG
// document in memory.
package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/syntree-dev/syntree/pkg/layout"
	"github.com/syntree-dev/syntree/pkg/render"
)

const fontFamily = "Go, Helvetica, sans-serif"

// Canvas accumulates SVG elements; call Finish to close the document.
type Canvas struct {
	buf bytes.Buffer
	cfg layout.Config
}

// New starts an SVG document of the given size with a white background.
func New(w, h float64, cfg layout.Config) *Canvas {
	c := &Canvas{cfg: cfg}
	fmt.Fprintf(&c.buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		w, h, w, h)
	fmt.Fprintf(&c.buf, `  <rect width="100%%" height="100%%" fill="white"/>`+"\n")
	return c
}

// Text draws s centered on x with its top edge at y.
func (c *Canvas) Text(x, y float64, s string, ink render.Ink) {
	style := ""
	if ink == render.InkText {
		style = ` font-style="italic"`
	}
	fmt.Fprintf(&c.buf,
		`  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="%s" font-size="%.1f" fill="%s"%s>%s</text>`+"\n",
		x, y+c.cfg.FontSize*0.8, fontFamily, c.cfg.FontSize, c.stroke(ink), style, escape(s))
}

// Line draws a single straight stroke.
func (c *Canvas) Line(x1, y1, x2, y2 float64, ink render.Ink) {
	fmt.Fprintf(&c.buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s"/>`+"\n",
		x1, y1, x2, y2, c.stroke(ink))
}

// Curve draws one quadratic segment.
func (c *Canvas) Curve(x1, y1, cx, cy, x2, y2 float64, ink render.Ink) {
	fmt.Fprintf(&c.buf, `  <path d="M %.1f %.1f Q %.1f %.1f %.1f %.1f" fill="none" stroke="%s"/>`+"\n",
		x1, y1, cx, cy, x2, y2, c.stroke(ink))
}

// Polygon draws a closed path, filled or stroked.
func (c *Canvas) Polygon(pts []render.Point, fill bool, ink render.Ink) {
	if len(pts) == 0 {
		return
	}
	var points bytes.Buffer
	for i, p := range pts {
		if i > 0 {
			points.WriteByte(' ')
		}
		fmt.Fprintf(&points, "%.1f,%.1f", p.X, p.Y)
	}
	fillAttr, strokeAttr := "none", c.stroke(ink)
	if fill {
		fillAttr, strokeAttr = c.stroke(ink), "none"
	}
	fmt.Fprintf(&c.buf, `  <polygon points="%s" fill="%s" stroke="%s"/>`+"\n",
		points.String(), fillAttr, strokeAttr)
}

func (c *Canvas) stroke(ink render.Ink) string {
	if !c.cfg.Color {
		return "black"
	}
	switch ink {
	case render.InkLabel:
		return "#204090"
	case render.InkText:
		return "#902020"
	case render.InkMovement:
		return "#606060"
	default:
		return "black"
	}
}

// Finish closes the document and returns the SVG bytes.
func (c *Canvas) Finish() []byte {
	c.buf.WriteString("</svg>\n")
	return c.buf.Bytes()
}

func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
