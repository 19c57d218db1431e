package layout

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/npillmayer/treeharness"
)

// MaxArenaBytes bounds the size of a single arena. Requests above it are
// rejected with ErrResourceExhausted instead of risking an allocation panic.
var MaxArenaBytes uintptr = 1 << 34

// Arena is one contiguous block of memory holding a root record followed by
// a fixed number of element records. Elements are never freed individually;
// the whole block is released by Free.
//
// The block is untyped memory. Records stored in it may reference other
// records of the same arena, but nothing outside of it.
type Arena struct {
	desc   *Descriptor
	words  []uint64
	root   unsafe.Pointer
	base   unsafe.Pointer
	stride uintptr
	n      int
}

// NewArena allocates memory for a root record and n elements laid out as
// described by d.
func NewArena(d *Descriptor, n int) (*Arena, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative element count %d", treeharness.ErrInvalidConfig, n)
	}
	rootSize, stride := roundUp(d.RootSize), d.Stride()
	if uintptr(n) > (math.MaxInt-rootSize)/stride {
		return nil, fmt.Errorf("%w: %d elements of %d bytes", treeharness.ErrResourceExhausted, n, stride)
	}
	size := rootSize + uintptr(n)*stride
	if size > MaxArenaBytes {
		return nil, fmt.Errorf("%w: arena of %d bytes exceeds limit of %d",
			treeharness.ErrResourceExhausted, size, MaxArenaBytes)
	}
	words := make([]uint64, (size+keySize-1)/keySize)
	root := unsafe.Pointer(unsafe.SliceData(words))
	base := root
	if n > 0 {
		base = unsafe.Add(root, rootSize)
	}
	a := &Arena{
		desc:   d,
		words:  words,
		root:   root,
		base:   base,
		stride: stride,
		n:      n,
	}
	treeharness.T().Debugf("arena: %d elements, stride %d, %d bytes", n, stride, size)
	return a, nil
}

// Descriptor returns the layout the arena was allocated for.
func (a *Arena) Descriptor() *Descriptor {
	return a.desc
}

// Len returns the number of element records.
func (a *Arena) Len() int {
	return a.n
}

// Root returns the root record.
func (a *Arena) Root() treeharness.Root {
	return treeharness.Root(a.root)
}

// Element returns element record i, 0 ≤ i < Len().
func (a *Arena) Element(i int) treeharness.Element {
	if i < 0 || i >= a.n {
		panic(fmt.Sprintf("arena: element index %d out of range [0,%d)", i, a.n))
	}
	return treeharness.Element(unsafe.Add(a.base, uintptr(i)*a.stride))
}

// Key returns the key of element i.
func (a *Arena) Key(i int) uint64 {
	return a.desc.ElementKey(a.Element(i))
}

// SetKey writes the key of element i.
func (a *Arena) SetKey(i int, key uint64) {
	a.desc.SetElementKey(a.Element(i), key)
}

// Touch writes every word of the arena once, so that first-touch page faults
// do not occur later during measurements. It clears all records.
func (a *Arena) Touch() {
	for i := range a.words {
		a.words[i] = 0
	}
}

// Free drops the arena's memory. The arena must not be used afterwards.
func (a *Arena) Free() {
	a.words, a.root, a.base, a.n = nil, nil, nil, 0
}
