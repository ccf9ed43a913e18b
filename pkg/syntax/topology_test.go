package syntax

import "testing"

func TestLink(t *testing.T) {
	root := Parse("[S [NP the dog] [VP [V chased] [NP the cat]]]")
	root.Link()

	if root.Parent != nil || root.Prev != nil || root.Next != nil {
		t.Error("root must have no parent or siblings")
	}

	np, vp := root.Children[0], root.Children[1]
	if root.First != np || root.Last != vp {
		t.Error("First/Last do not match the child sequence")
	}
	if np.Parent != root || vp.Parent != root {
		t.Error("children must point back to their parent")
	}
	if np.Prev != nil || np.Next != vp || vp.Prev != np || vp.Next != nil {
		t.Error("sibling links are inconsistent")
	}

	// Nested level.
	v, obj := vp.Children[0], vp.Children[1]
	if v.Parent != vp || obj.Parent != vp {
		t.Error("nested children must point to the nested parent")
	}
	if v.Next != obj || obj.Prev != v {
		t.Error("nested sibling links are inconsistent")
	}

	leaf := np.Children[0]
	if leaf.First != nil || leaf.Last != nil {
		t.Error("terminals must have nil First/Last")
	}
}

func TestLinkIdempotent(t *testing.T) {
	root := Parse("[S [NP the dog] [VP barks]]")
	root.Link()

	type snapshot struct {
		parent, prev, next, first, last *Node
	}
	before := map[*Node]snapshot{}
	root.Walk(func(n *Node) {
		before[n] = snapshot{n.Parent, n.Prev, n.Next, n.First, n.Last}
	})

	root.Link()
	root.Walk(func(n *Node) {
		b := before[n]
		if n.Parent != b.parent || n.Prev != b.prev || n.Next != b.next ||
			n.First != b.first || n.Last != b.last {
			t.Fatalf("relinking changed topology for %q", n.Text)
		}
	})
}

func TestRoot(t *testing.T) {
	root := Parse("[S [NP the dog] [VP barks]]")
	root.Link()

	root.Walk(func(n *Node) {
		if got := n.Root(); got != root {
			t.Errorf("Root() from %q = %v, want the tree root", n.Text, got)
		}
	})
}
