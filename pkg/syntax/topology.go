package syntax

// Link assigns the derived topology for the whole tree: parent references,
// first/last-child caches and next/previous sibling links. It runs top-down
// and is idempotent; calling it again on an already linked tree recomputes
// the same references. Link must run before triangle decisions, layout and
// movement resolution.
func (n *Node) Link() {
	n.Parent = nil
	n.Prev = nil
	n.Next = nil
	link(n)
}

func link(n *Node) {
	if len(n.Children) == 0 {
		n.First = nil
		n.Last = nil
		return
	}
	n.First = n.Children[0]
	n.Last = n.Children[len(n.Children)-1]

	var prev *Node
	for _, c := range n.Children {
		c.Parent = n
		c.Prev = prev
		c.Next = nil
		if prev != nil {
			prev.Next = c
		}
		prev = c
		link(c)
	}
}

// Root walks parent links up to the tree root.
func (n *Node) Root() *Node {
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}
