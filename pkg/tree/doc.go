// Package tree provides a generic m-ary tree node.
//
// A Node holds a comparable id, an arbitrary content value, at most one
// parent and an ordered list of children. Structure changes only through
// SetParent (and Add, Push and SetRoot, which call it), so a node's parent
// always lists the node exactly once among its children and vice versa.
//
//	root := tree.New(0, "zero")
//	root.Push(tree.New(1, "one"), tree.New(2, "two"))
//	for n := range root.All() {
//	    fmt.Println(n.ID(), n.Content())
//	}
//
// # Records
//
// Encode and Parse convert between nodes and nested Record values. EncodeWith
// and ParseWith accept a BuildFunc and DestructureFunc to produce any other
// record shape; package record uses them for configurable field names over
// JSON and YAML.
//
// # Cycles
//
// SetParent does not check whether the new parent is a descendant of the
// node. Building a cycle leaves the tree inconsistent and walks such as
// Root, Depth and All will not terminate.
//
// # Thread Safety
//
// Nodes are not safe for concurrent mutation. Callers sharing a tree across
// goroutines must synchronize access themselves.
package tree
