package treeharness

import (
	"errors"
	"testing"
)

func TestStackCapacity(t *testing.T) {
	s, err := NewStack[int](2)
	if err != nil {
		t.Fatal(err)
	}
	if !s.Push(1) || !s.Push(2) {
		t.Fatalf("expected two pushes to succeed")
	}
	if s.Push(3) {
		t.Errorf("expected push onto a full stack to fail")
	}
	if s.Len() != 2 || s.Top() != 2 {
		t.Errorf("full stack changed by failed push: len=%d, top=%d", s.Len(), s.Top())
	}
	if x := s.Pop(); x != 2 {
		t.Errorf("expected to pop 2, got %d", x)
	}
	s.Pop()
	if !s.IsEmpty() || s.MaxDepth() != 2 {
		t.Errorf("expected empty stack with max depth 2, have len=%d, max=%d", s.Len(), s.MaxDepth())
	}
	s.Reset()
	if s.MaxDepth() != 0 || s.Cap() != 2 {
		t.Errorf("reset should clear statistics and keep capacity")
	}
}

func TestStackLimits(t *testing.T) {
	if _, err := NewStack[int](0); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for capacity 0, got %v", err)
	}
	if _, err := NewStack[int](MaxStackCapacity + 1); !errors.Is(err, ErrResourceExhausted) {
		t.Errorf("expected ErrResourceExhausted, got %v", err)
	}
}
