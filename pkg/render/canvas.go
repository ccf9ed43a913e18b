// Package render turns a laid-out tree and its resolved movement links
// into drawing operations on an abstract canvas. Concrete surfaces (raster
// PNG, SVG) live in subpackages; this package only decides WHAT to draw
// and where.
package render

// Ink selects the pen class for an operation. Surfaces map inks to fonts
// and colors; the monochrome mode collapses all inks to black.
type Ink int

const (
	// InkLabel draws nonterminal labels.
	InkLabel Ink = iota
	// InkText draws terminal surface text.
	InkText
	// InkLine draws connector lines and triangle outlines.
	InkLine
	// InkMovement draws movement curves and arrowheads.
	InkMovement
)

// Point is a canvas coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Canvas is the drawing surface contract. Text is centered horizontally on
// x with its top edge at y. Curve is a single quadratic segment.
type Canvas interface {
	Text(x, y float64, s string, ink Ink)
	Line(x1, y1, x2, y2 float64, ink Ink)
	Curve(x1, y1, cx, cy, x2, y2 float64, ink Ink)
	Polygon(pts []Point, fill bool, ink Ink)
}
