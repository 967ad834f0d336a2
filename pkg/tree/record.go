package tree

import "fmt"

// Record is the default encoded form of a node.
type Record[K comparable, V any] struct {
	ID       K              `json:"id" yaml:"id"`
	Content  V              `json:"content" yaml:"content"`
	Children []Record[K, V] `json:"children" yaml:"children"`
}

// BuildFunc produces the record for one node. children encodes the node's
// children with the same BuildFunc; the builder decides whether and when
// to call it.
type BuildFunc[K comparable, V any, R any] func(n *Node[K, V], children func() []R) R

// DestructureFunc splits a record into the parts of a node.
type DestructureFunc[K comparable, V any, R any] func(r R) (id K, content V, children []R, err error)

// Encode converts the subtree into nested default records.
func (n *Node[K, V]) Encode() Record[K, V] {
	return EncodeWith(n, BuildRecord[K, V])
}

// EncodeWith converts the subtree using build for every node.
func EncodeWith[K comparable, V any, R any](n *Node[K, V], build BuildFunc[K, V, R]) R {
	return build(n, func() []R {
		encoded := make([]R, 0, len(n.children))
		for _, child := range n.children {
			encoded = append(encoded, EncodeWith(child, build))
		}
		return encoded
	})
}

// BuildRecord is the default BuildFunc.
func BuildRecord[K comparable, V any](n *Node[K, V], children func() []Record[K, V]) Record[K, V] {
	return Record[K, V]{
		ID:       n.id,
		Content:  n.content,
		Children: children(),
	}
}

// DestructureRecord is the default DestructureFunc.
func DestructureRecord[K comparable, V any](r Record[K, V]) (K, V, []Record[K, V], error) {
	return r.ID, r.Content, r.Children, nil
}

// Parse rebuilds a tree from nested default records. New nodes are always
// created.
func Parse[K comparable, V any](r Record[K, V]) *Node[K, V] {
	n, _ := ParseWith(r, DestructureRecord[K, V])
	return n
}

// ParseWith rebuilds a tree using destructure for every record. The first
// destructure error aborts the parse.
func ParseWith[K comparable, V any, R any](r R, destructure DestructureFunc[K, V, R]) (*Node[K, V], error) {
	id, content, children, err := destructure(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadRecord, err)
	}
	n := New(id, content)
	for i, child := range children {
		parsed, err := ParseWith(child, destructure)
		if err != nil {
			return nil, fmt.Errorf("child %d of %v: %w", i, id, err)
		}
		n.Add(parsed)
	}
	return n, nil
}
