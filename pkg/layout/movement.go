package layout

import (
	"math"

	"github.com/syntree-dev/syntree/pkg/syntax"
)

// Direction is the lateral routing direction of a movement curve.
type Direction int

const (
	// Rightwards routes the curve to the right of the tail.
	Rightwards Direction = iota
	// Leftwards routes the curve to the left of the tail.
	Leftwards
)

func (d Direction) String() string {
	if d == Leftwards {
		return "left"
	}
	return "right"
}

// Sign returns -1 for leftwards routing and +1 for rightwards.
func (d Direction) Sign() float64 {
	if d == Leftwards {
		return -1
	}
	return 1
}

// Movement is a resolved movement line from a tail (surface position) back
// to its head (trace target). It references tree nodes but owns none.
type Movement struct {
	Tail *syntax.Node
	Head *syntax.Node
	LCA  *syntax.Node

	// Drawable is false when the tail is unmatched or the head dominates
	// the tail; such links degrade to "not drawn" rather than failing.
	Drawable bool

	Dir Direction

	// DestX, DestY anchor the arrowhead at the head's position and
	// subtree depth.
	DestX, DestY float64

	// Clearance is the maximum intervening subtree depth the curve must
	// clear; BottomY = Clearance + VSpace is the curve's lowest point.
	Clearance float64
	BottomY   float64
}

// chainMark is the per-link transient scratch state. Marks live in a map
// keyed by node identity, freshly allocated for every link, so resolving
// one link can never leak state into the next.
type chainMark uint8

const (
	unmarked chainMark = iota
	tailChain
	headChain
)

// ResolveMovements builds one Movement per tail-bearing node, in
// depth-first order. Heads are matched root-wide by label, first match
// wins. The tree must already be linked and laid out (MaxY populated).
func ResolveMovements(root *syntax.Node, cfg Config) []*Movement {
	var links []*Movement
	for _, tail := range root.Tails() {
		m := &Movement{Tail: tail, Head: root.FindHead(tail.Tail)}
		m.resolve(cfg)
		links = append(links, m)
	}
	return links
}

// resolve runs the per-link routing algorithm with a fresh mark table.
func (m *Movement) resolve(cfg Config) {
	if m.Head == nil || m.Tail == nil {
		return
	}

	marks := make(map[*syntax.Node]chainMark)

	// Mark the tail's ancestor chain. A head that dominates its own tail
	// cannot be drawn.
	for n := m.Tail; n != nil; n = n.Parent {
		if n == m.Head {
			return
		}
		marks[n] = tailChain
	}

	// Walk the head's chain until it meets the tail chain: that node is
	// the least common ancestor.
	for n := m.Head; n != nil; n = n.Parent {
		if marks[n] == tailChain {
			m.LCA = n
			break
		}
		marks[n] = headChain
	}
	if m.LCA == nil {
		return
	}

	// The first marked child of the LCA decides the routing side: if the
	// head's subtree comes first the curve swings leftwards.
	m.Dir = Rightwards
	for c := m.LCA.First; c != nil; c = c.Next {
		if mk := marks[c]; mk != unmarked {
			if mk == headChain {
				m.Dir = Leftwards
			}
			break
		}
	}

	tailSide := lateralScan(m.Tail, m.Dir, marks)
	headSide := lateralScan(m.Head, opposite(m.Dir), marks)
	m.Clearance = math.Max(math.Max(tailSide, headSide), m.Head.MaxY)
	m.BottomY = m.Clearance + cfg.VSpace
	m.DestX = m.Head.X
	m.DestY = m.Head.MaxY
	m.Drawable = true
}

func opposite(d Direction) Direction {
	if d == Leftwards {
		return Rightwards
	}
	return Leftwards
}

// lateralScan accumulates the maximum subtree depth across siblings of n in
// direction d, stopping at the first sibling on either chain. Running off
// the sibling list continues the scan one level up, terminating at root.
func lateralScan(n *syntax.Node, d Direction, marks map[*syntax.Node]chainMark) float64 {
	h := 0.0
	for s := sibling(n, d); ; s = sibling(s, d) {
		if s == nil {
			if n.Parent == nil {
				return h
			}
			return math.Max(h, lateralScan(n.Parent, d, marks))
		}
		if marks[s] != unmarked {
			return h
		}
		h = math.Max(h, s.MaxY)
	}
}

func sibling(n *syntax.Node, d Direction) *syntax.Node {
	if d == Leftwards {
		return n.Prev
	}
	return n.Next
}

// NeedsExtraHeight reports whether any drawable link's clearance reaches
// the tree's overall max depth. Such a curve bottoms out one spacing unit
// below the deepest node and the canvas must grow by that unit or the
// curve is clipped.
func NeedsExtraHeight(links []*Movement, root *syntax.Node) bool {
	for _, l := range links {
		if l.Drawable && l.Clearance == root.MaxY {
			return true
		}
	}
	return false
}
