// Package raster implements the render.Canvas contract on a fogleman/gg
// pixel context and encodes the result as PNG.
package raster

import (
	"bytes"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/syntree-dev/syntree/pkg/errors"
	"github.com/syntree-dev/syntree/pkg/fonts"
	"github.com/syntree-dev/syntree/pkg/layout"
	"github.com/syntree-dev/syntree/pkg/render"
)

var (
	colorLabel    = color.RGBA{R: 0x20, G: 0x40, B: 0x90, A: 0xff}
	colorText     = color.RGBA{R: 0x90, G: 0x20, B: 0x20, A: 0xff}
	colorMovement = color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xff}
)

// Canvas draws onto an in-memory RGBA image.
type Canvas struct {
	dc      *gg.Context
	cfg     layout.Config
	term    font.Face
	nonterm font.Face
}

// New creates a white canvas of the given size. A font loading failure is
// an environment (capability) error: rendering cannot proceed without a
// drawing surface that can place text.
func New(w, h float64, cfg layout.Config) (*Canvas, error) {
	term, err := fonts.Terminal(cfg.FontSize)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNoSurface, err, "load terminal face")
	}
	nonterm, err := fonts.Nonterminal(cfg.FontSize)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNoSurface, err, "load label face")
	}

	dc := gg.NewContext(int(w), int(h))
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetLineWidth(1)
	return &Canvas{dc: dc, cfg: cfg, term: term, nonterm: nonterm}, nil
}

// Text draws s centered on x with its top edge at y.
func (c *Canvas) Text(x, y float64, s string, ink render.Ink) {
	if ink == render.InkText {
		c.dc.SetFontFace(c.term)
	} else {
		c.dc.SetFontFace(c.nonterm)
	}
	c.setInk(ink)
	c.dc.DrawStringAnchored(s, x, y, 0.5, 1)
}

// Line draws a single straight stroke.
func (c *Canvas) Line(x1, y1, x2, y2 float64, ink render.Ink) {
	c.setInk(ink)
	c.dc.DrawLine(x1, y1, x2, y2)
	c.dc.Stroke()
}

// Curve draws one quadratic segment.
func (c *Canvas) Curve(x1, y1, cx, cy, x2, y2 float64, ink render.Ink) {
	c.setInk(ink)
	c.dc.MoveTo(x1, y1)
	c.dc.QuadraticTo(cx, cy, x2, y2)
	c.dc.Stroke()
}

// Polygon draws a closed path, filled or stroked.
func (c *Canvas) Polygon(pts []render.Point, fill bool, ink render.Ink) {
	if len(pts) == 0 {
		return
	}
	c.setInk(ink)
	c.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.ClosePath()
	if fill {
		c.dc.Fill()
	} else {
		c.dc.Stroke()
	}
}

func (c *Canvas) setInk(ink render.Ink) {
	if !c.cfg.Color {
		c.dc.SetColor(color.Black)
		return
	}
	switch ink {
	case render.InkLabel:
		c.dc.SetColor(colorLabel)
	case render.InkText:
		c.dc.SetColor(colorText)
	case render.InkMovement:
		c.dc.SetColor(colorMovement)
	default:
		c.dc.SetColor(color.Black)
	}
}

// EncodePNG returns the canvas contents as a PNG image.
func (c *Canvas) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}
