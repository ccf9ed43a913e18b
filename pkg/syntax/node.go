// Package syntax parses the bracket notation for constituency trees and
// builds the node topology that the layout engine operates on.
//
// The notation is `[Label child child ...]` for constituents and bare text
// for terminals. A terminal may carry a single `<name>` movement-tail
// annotation, and a constituent label may end in `^` (triangle abbreviation)
// or `_name` (movement-head label, shown as subscript digits when numeric):
//
//	[S [NP what_1] [VP [V did] [NP you] [V see] [NP t <1>]]]
//
// Parsing is permissive: unbalanced brackets are padded rather than
// rejected, and malformed input degrades to a minimal tree.
package syntax

// Node is a single constituent or terminal in the parse tree.
//
// The tree owns all of its nodes; Parent, Next, Prev, First and Last are
// non-owning cross references maintained by Link and recomputable from
// Children at any time. Layout fields are filled in by the layout engine
// and are zero until then.
type Node struct {
	// Text is the display text: a constituent label (subscripts already
	// applied) or a terminal's surface text.
	Text string `json:"text"`

	// Children is the ordered child sequence, empty for terminals.
	// The order is fixed at parse time.
	Children []*Node `json:"children,omitempty"`

	// Tail is the movement-tail identifier from a `<name>` annotation,
	// empty when the terminal carries none.
	Tail string `json:"tail,omitempty"`

	// HeadLabel is the movement-head label from a `_name` suffix.
	HeadLabel string `json:"head_label,omitempty"`

	// Starred records a trailing `^` on the label: descendant leaves are
	// abbreviated under a triangle.
	Starred bool `json:"starred,omitempty"`

	// Topology, assigned by Link.
	Parent *Node `json:"-"`
	Next   *Node `json:"-"`
	Prev   *Node `json:"-"`
	First  *Node `json:"-"`
	Last   *Node `json:"-"`

	// Layout results, assigned by the layout engine.
	LeftWidth  float64 `json:"left_width"`
	RightWidth float64 `json:"right_width"`
	Step       float64 `json:"step"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	MaxY       float64 `json:"max_y"`
	Triangle   bool    `json:"triangle,omitempty"`
}

// IsLeaf reports whether the node is a terminal.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Walk visits n and every descendant in depth-first order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node) { count++ })
	return count
}

// FindHead returns the first node in depth-first order whose movement-head
// label equals name, or nil. Duplicate labels are not validated; the first
// match wins.
func (n *Node) FindHead(name string) *Node {
	if name == "" {
		return nil
	}
	var found *Node
	n.Walk(func(c *Node) {
		if found == nil && c.HeadLabel == name {
			found = c
		}
	})
	return found
}

// Tails returns every tail-bearing node in depth-first order.
func (n *Node) Tails() []*Node {
	var tails []*Node
	n.Walk(func(c *Node) {
		if c.Tail != "" {
			tails = append(tails, c)
		}
	})
	return tails
}
