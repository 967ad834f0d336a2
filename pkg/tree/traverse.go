package tree

import "iter"

// All yields the subtree rooted at n in pre-order: the node itself, then
// each child's subtree in child order. Every call starts a fresh walk over
// the structure as it is at that moment.
func (n *Node[K, V]) All() iter.Seq[*Node[K, V]] {
	return func(yield func(*Node[K, V]) bool) {
		var pending stack[*Node[K, V]]
		pending.Push(n)
		for pending.Len() > 0 {
			node, _ := pending.Pop()
			if !yield(node) {
				return
			}
			// Push in reverse so the first child is popped first.
			for i := len(node.children) - 1; i >= 0; i-- {
				pending.Push(node.children[i])
			}
		}
	}
}

// Leaves returns the leaves of the subtree in pre-order, including n when
// it is itself a leaf.
func (n *Node[K, V]) Leaves() []*Node[K, V] {
	leaves := []*Node[K, V]{}
	for node := range n.All() {
		if node.IsLeaf() {
			leaves = append(leaves, node)
		}
	}
	return leaves
}
