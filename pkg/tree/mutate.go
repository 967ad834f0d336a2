package tree

import "slices"

// SetParent moves the node under parent, appending it to the end of the
// parent's children. The node is first removed from its current parent,
// matched by identity. A nil parent orphans the node. The node keeps its
// own children either way.
//
// No cycle check is made: passing a descendant of the node (or the node
// itself) corrupts the tree, and later walks over it never terminate.
func (n *Node[K, V]) SetParent(parent *Node[K, V]) {
	if n.parent != nil {
		old := n.parent
		if i := slices.Index(old.children, n); i >= 0 {
			old.children = slices.Delete(old.children, i, i+1)
		}
	}
	if parent != nil {
		parent.children = append(parent.children, n)
	}
	n.parent = parent
}

// SetRoot detaches the node from its parent, making it a root.
func (n *Node[K, V]) SetRoot() {
	n.SetParent(nil)
}

// Add attaches child as the last child of n and returns child.
func (n *Node[K, V]) Add(child *Node[K, V]) *Node[K, V] {
	child.SetParent(n)
	return child
}

// Push attaches each child in order and returns n.
func (n *Node[K, V]) Push(children ...*Node[K, V]) *Node[K, V] {
	for _, child := range children {
		n.Add(child)
	}
	return n
}
