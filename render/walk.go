package render

import (
	"fmt"

	"github.com/npillmayer/treeharness"
)

// inorder is an iterative in-order traversal. The stack holds the ancestors
// of the current node which are yet to be visited or whose right subtree is
// yet to be visited; its length is the depth of the current node.
type inorder struct {
	acc   treeharness.Accessor
	stack *treeharness.Stack[treeharness.Node]
}

func (it *inorder) push(n treeharness.Node) error {
	if !it.stack.Push(n) {
		return fmt.Errorf("%w: tree deeper than %d levels", treeharness.ErrStackOverflow, it.stack.Cap())
	}
	return nil
}

// first descends to the leftmost node below n.
func (it *inorder) first(n treeharness.Node) (treeharness.Node, error) {
	it.stack.Reset()
	for l := it.acc.Left(n); l != nil; l = it.acc.Left(n) {
		if err := it.push(n); err != nil {
			return nil, err
		}
		n = l
	}
	return n, nil
}

// next returns the in-order successor of n, or nil after the last node.
func (it *inorder) next(n treeharness.Node) (treeharness.Node, error) {
	if r := it.acc.Right(n); r != nil {
		if err := it.push(n); err != nil {
			return nil, err
		}
		next := r
		for l := it.acc.Left(next); l != nil; l = it.acc.Left(next) {
			if err := it.push(next); err != nil {
				return nil, err
			}
			next = l
		}
		return next, nil
	}
	// climb up to the first ancestor n is left of
	for !it.stack.IsEmpty() {
		parent := it.stack.Pop()
		if it.acc.Right(parent) != n {
			return parent, nil
		}
		n = parent
	}
	return nil, nil
}

func (it *inorder) depth() int {
	return it.stack.Len()
}

// Walk visits the nodes of a tree in in-order sequence, calling fn with each
// node and its depth (0 for the topmost node). The walk stops early if fn
// returns false. Trees deeper than capacity fail with ErrStackOverflow.
func Walk(acc treeharness.Accessor, root treeharness.Root, capacity int, fn func(n treeharness.Node, depth int) bool) error {
	stack, err := treeharness.NewStack[treeharness.Node](capacity)
	if err != nil {
		return err
	}
	it := inorder{acc: acc, stack: stack}
	n := acc.FirstNode(root)
	if n == nil {
		return nil
	}
	if n, err = it.first(n); err != nil {
		return err
	}
	for n != nil {
		if !fn(n, it.depth()) {
			return nil
		}
		if n, err = it.next(n); err != nil {
			return err
		}
	}
	return nil
}

// Keys returns the keys of a tree in ascending order.
func Keys(acc treeharness.Accessor, root treeharness.Root, capacity int) ([]uint64, error) {
	var keys []uint64
	err := Walk(acc, root, capacity, func(n treeharness.Node, _ int) bool {
		keys = append(keys, acc.Key(n))
		return true
	})
	return keys, err
}
