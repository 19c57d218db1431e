package treeharness

import "unsafe"

// Node references the node part of an element record. A nil Node is absent.
type Node unsafe.Pointer

// Root references the per-tree root record.
type Root unsafe.Pointer

// Element references the start of an element record. An element embeds
// exactly one node and one key, each at a module-specific offset.
type Element unsafe.Pointer

// Accessor reads tree structure without knowledge of the node type.
// Implementations must be pure: the result depends only on the accessor and
// the reference passed in.
type Accessor interface {
	// FirstNode returns the topmost node of a tree, or nil for an empty tree.
	FirstNode(root Root) Node
	// Left returns the left child of n, or nil.
	Left(n Node) Node
	// Right returns the right child of n, or nil.
	Right(n Node) Node
	// Key returns the key of the element containing n.
	Key(n Node) uint64
}

// Shape is an Accessor which additionally reports a module-defined balance
// factor per node. The balance is used for display only.
type Shape interface {
	Accessor
	Balance(n Node) int
}
