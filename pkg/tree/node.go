package tree

import (
	"fmt"
	"slices"
)

type Node[K comparable, V any] struct {
	id       K             // Identifier, fixed at construction
	content  V             // Caller payload, zero when absent
	parent   *Node[K, V]   // Back reference, nil for a root
	children []*Node[K, V] // Ordered child nodes
}

// New returns a standalone node with no parent and no children.
func New[K comparable, V any](id K, content V) *Node[K, V] {
	return &Node[K, V]{
		id:       id,
		content:  content,
		children: []*Node[K, V]{},
	}
}

func (n *Node[K, V]) ID() K {
	return n.id
}

func (n *Node[K, V]) Content() V {
	return n.content
}

// SetContent replaces the payload. The structure is untouched.
func (n *Node[K, V]) SetContent(content V) {
	n.content = content
}

func (n *Node[K, V]) String() string {
	return fmt.Sprintf("Node(%v)", n.id)
}

// Parent returns the immediate parent, or nil for a root.
func (n *Node[K, V]) Parent() *Node[K, V] {
	return n.parent
}

// ParentN walks up count parent links. A count below 1 yields the node
// itself and walking past the root yields nil.
func (n *Node[K, V]) ParentN(count int) *Node[K, V] {
	current := n
	for ; count > 0; count-- {
		if current.IsRoot() {
			return nil
		}
		current = current.parent
	}
	return current
}

// Parents is an alias for Ancestors.
func (n *Node[K, V]) Parents() []*Node[K, V] {
	return n.Ancestors()
}

// Ancestors lists the parent, grandparent and so on up to the root,
// nearest first. A root has no ancestors.
func (n *Node[K, V]) Ancestors() []*Node[K, V] {
	ancestors := []*Node[K, V]{}
	for p := n.parent; p != nil; p = p.parent {
		ancestors = append(ancestors, p)
	}
	return ancestors
}

// Lineage is the node followed by its ancestors.
func (n *Node[K, V]) Lineage() []*Node[K, V] {
	return append([]*Node[K, V]{n}, n.Ancestors()...)
}

// Children returns a copy of the ordered child list. Use SetParent, Add
// or Push to change structure.
func (n *Node[K, V]) Children() []*Node[K, V] {
	return slices.Clone(n.children)
}

func (n *Node[K, V]) Len() int {
	return len(n.children)
}

func (n *Node[K, V]) ChildAt(i int) (*Node[K, V], error) {
	if i < 0 || i >= len(n.children) {
		return nil, fmt.Errorf("child %d of %v with %d children: %w", i, n.id, len(n.children), ErrOutOfBounds)
	}
	return n.children[i], nil
}

// Child returns the first child whose id equals key, or nil.
func (n *Node[K, V]) Child(key K) *Node[K, V] {
	for _, child := range n.children {
		if child.id == key {
			return child
		}
	}
	return nil
}

func (n *Node[K, V]) HasChildren() bool {
	return len(n.children) > 0
}

func (n *Node[K, V]) IsRoot() bool {
	return n.parent == nil
}

func (n *Node[K, V]) Root() *Node[K, V] {
	root := n
	for !root.IsRoot() {
		root = root.parent
	}
	return root
}

func (n *Node[K, V]) IsLeaf() bool {
	return !n.HasChildren()
}

// Siblings returns the other children of the parent in their existing
// order. A root has no siblings.
func (n *Node[K, V]) Siblings() []*Node[K, V] {
	siblings := []*Node[K, V]{}
	if n.IsRoot() {
		return siblings
	}
	for _, sibling := range n.parent.children {
		if sibling != n {
			siblings = append(siblings, sibling)
		}
	}
	return siblings
}

// Index is the position of the node among its parent's children, or -1
// for a root.
func (n *Node[K, V]) Index() int {
	if n.IsRoot() {
		return -1
	}
	return slices.Index(n.parent.children, n)
}

func (n *Node[K, V]) Next() (*Node[K, V], error) {
	return n.NextN(1)
}

func (n *Node[K, V]) Previous() (*Node[K, V], error) {
	return n.PreviousN(1)
}

// NextN returns the sibling count places after the node. Stepping outside
// the sibling group, or calling it on a root, is an error.
func (n *Node[K, V]) NextN(count int) (*Node[K, V], error) {
	return n.sibling(count)
}

// PreviousN returns the sibling count places before the node.
func (n *Node[K, V]) PreviousN(count int) (*Node[K, V], error) {
	return n.sibling(-count)
}

func (n *Node[K, V]) sibling(offset int) (*Node[K, V], error) {
	if n.IsRoot() {
		return nil, fmt.Errorf("sibling of %v: %w", n.id, ErrNoParent)
	}
	target := n.Index() + offset
	if target < 0 || target >= len(n.parent.children) {
		return nil, fmt.Errorf("sibling %d of %v in group of %d: %w", target, n.id, len(n.parent.children), ErrOutOfBounds)
	}
	return n.parent.children[target], nil
}

// Path lists child indexes leading from the root down to the node. The
// path of a root is empty.
func (n *Node[K, V]) Path() []int {
	path := []int{}
	for current := n; !current.IsRoot(); current = current.parent {
		path = append(path, current.Index())
	}
	slices.Reverse(path)
	return path
}

// Descendant follows path one child index at a time. It is the inverse of
// Path when called on the root.
func (n *Node[K, V]) Descendant(path ...int) (*Node[K, V], error) {
	current := n
	for _, position := range path {
		child, err := current.ChildAt(position)
		if err != nil {
			return nil, err
		}
		current = child
	}
	return current, nil
}
