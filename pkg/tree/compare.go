package tree

import "cmp"

// Comparator returns an ordering function over nodes, suitable for
// slices.SortFunc. key extracts the value to order by and compare orders
// two such values.
func Comparator[K comparable, V any, T any](compare func(a, b T) int, key func(*Node[K, V]) T) func(a, b *Node[K, V]) int {
	return func(a, b *Node[K, V]) int {
		return compare(key(a), key(b))
	}
}

// ByContent orders nodes by content using Ascending.
func ByContent[K comparable, V cmp.Ordered]() func(a, b *Node[K, V]) int {
	return Comparator(Ascending[V], ContentKey[K, V])
}

// Ascending returns -1 when a < b and 1 otherwise. It never reports
// equality, so equal values are ordered as a after b. Note the direction:
// this sorts smallest first, unlike a `a > b ? -1 : 1` default, which
// would sort largest first.
func Ascending[T cmp.Ordered](a, b T) int {
	if a < b {
		return -1
	}
	return 1
}

// ContentKey is the default sort key: the node's content.
func ContentKey[K comparable, V any](n *Node[K, V]) V {
	return n.content
}
