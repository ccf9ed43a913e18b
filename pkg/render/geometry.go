package render

import (
	"encoding/json"

	"github.com/syntree-dev/syntree/pkg/layout"
	"github.com/syntree-dev/syntree/pkg/syntax"
)

// Geometry is the serializable result of a layout run: canvas size, the
// positioned tree and the resolved movement lines. It is what the JSON
// output format and the HTTP API return.
type Geometry struct {
	Width  float64       `json:"width"`
	Height float64       `json:"height"`
	Root   *syntax.Node  `json:"root"`
	Links  []Link        `json:"links,omitempty"`
	Config layout.Config `json:"config"`
}

// Link is the serializable view of a movement line. Node references are
// flattened to coordinates so the structure has no cycles.
type Link struct {
	Tail      Point   `json:"tail"`
	Dest      Point   `json:"dest"`
	BottomY   float64 `json:"bottom_y"`
	Direction string  `json:"direction"`
	Drawable  bool    `json:"drawable"`
}

// Export builds the geometry for a laid-out tree.
func Export(root *syntax.Node, links []*layout.Movement, cfg layout.Config) Geometry {
	w, h := Size(root, links, cfg)
	g := Geometry{Width: w, Height: h, Root: root, Config: cfg}
	for _, l := range links {
		link := Link{Drawable: l.Drawable, Direction: l.Dir.String()}
		if l.Drawable {
			link.Tail = Point{X: l.Tail.X, Y: l.Tail.MaxY}
			link.Dest = Point{X: l.DestX, Y: l.DestY}
			link.BottomY = l.BottomY
		}
		g.Links = append(g.Links, link)
	}
	return g
}

// Marshal serializes the geometry as indented JSON.
func (g Geometry) Marshal() ([]byte, error) {
	return json.MarshalIndent(g, "", "  ")
}
