package tree

import "reflect"

// Detach returns a standalone copy of the node: same id, duplicated
// content, no parent and no children.
func (n *Node[K, V]) Detach() *Node[K, V] {
	return New(n.id, DuplicateContent(n.content))
}

// Clone returns an independent copy of the whole subtree rooted at n.
func (n *Node[K, V]) Clone() *Node[K, V] {
	dup := n.Detach()
	for _, child := range n.children {
		dup.Add(child.Clone())
	}
	return dup
}

// DuplicateContent copies map and slice content one level deep. Elements
// are shared with the original. Any other content is returned as is.
func DuplicateContent[V any](content V) V {
	value := reflect.ValueOf(any(content))
	if !value.IsValid() {
		return content
	}
	switch value.Kind() {
	case reflect.Map:
		if value.IsNil() {
			return content
		}
		dup := reflect.MakeMapWithSize(value.Type(), value.Len())
		entries := value.MapRange()
		for entries.Next() {
			dup.SetMapIndex(entries.Key(), entries.Value())
		}
		return dup.Interface().(V)
	case reflect.Slice:
		if value.IsNil() {
			return content
		}
		dup := reflect.MakeSlice(value.Type(), value.Len(), value.Len())
		reflect.Copy(dup, value)
		return dup.Interface().(V)
	}
	return content
}
