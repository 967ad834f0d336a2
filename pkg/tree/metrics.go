package tree

// Depth is the number of ancestors; 0 for a root.
func (n *Node[K, V]) Depth() int {
	depth := 0
	for p := n.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}

// Height is the longest path, in edges, from n down to a leaf.
func (n *Node[K, V]) Height() int {
	if n.IsLeaf() {
		return 0
	}
	highest := 0
	for _, child := range n.children {
		highest = max(highest, child.Height())
	}
	return 1 + highest
}

// Breadth is the size of the node's sibling group including itself; 1 for
// a root.
func (n *Node[K, V]) Breadth() int {
	if n.IsRoot() {
		return 1
	}
	return len(n.parent.children)
}
