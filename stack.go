package treeharness

import "fmt"

// MaxStackCapacity bounds the capacity of a traversal stack.
const MaxStackCapacity = 1 << 24

// Stack is a traversal stack of fixed capacity. Iterative tree algorithms
// use it in place of recursion; its capacity bounds the depth (and, for
// paired traversals, the breadth) of trees they can handle.
type Stack[T any] struct {
	items    []T
	maxDepth int
}

// NewStack allocates a stack holding at most capacity items.
func NewStack[T any](capacity int) (*Stack[T], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: stack capacity %d", ErrInvalidConfig, capacity)
	}
	if capacity > MaxStackCapacity {
		return nil, fmt.Errorf("%w: stack capacity %d exceeds %d",
			ErrResourceExhausted, capacity, MaxStackCapacity)
	}
	return &Stack[T]{items: make([]T, 0, capacity)}, nil
}

// Push adds an item on top of the stack. It returns false, leaving the stack
// unchanged, if the stack is full.
func (s *Stack[T]) Push(item T) bool {
	if len(s.items) == cap(s.items) {
		return false
	}
	s.items = append(s.items, item)
	if len(s.items) > s.maxDepth {
		s.maxDepth = len(s.items)
	}
	return true
}

// Pop removes and returns the top item. The stack must not be empty.
func (s *Stack[T]) Pop() T {
	n := len(s.items) - 1
	item := s.items[n]
	var zero T
	s.items[n] = zero
	s.items = s.items[:n]
	return item
}

// Top returns the top item without removing it. The stack must not be empty.
func (s *Stack[T]) Top() T {
	return s.items[len(s.items)-1]
}

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// IsEmpty is true for a stack without items.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Cap returns the stack's capacity.
func (s *Stack[T]) Cap() int {
	return cap(s.items)
}

// MaxDepth returns the largest number of items the stack has held at once.
func (s *Stack[T]) MaxDepth() int {
	return s.maxDepth
}

// Reset empties the stack and clears its depth statistics.
func (s *Stack[T]) Reset() {
	clear(s.items)
	s.items = s.items[:0]
	s.maxDepth = 0
}
