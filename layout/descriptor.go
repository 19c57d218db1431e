package layout

import (
	"fmt"
	"unsafe"

	"github.com/npillmayer/treeharness"
)

const (
	wordSize = unsafe.Sizeof(uintptr(0))
	keySize  = unsafe.Sizeof(uint64(0))
)

// Descriptor holds the read-only layout metadata of one tree module.
// Offsets are constant for the lifetime of a module and identical for every
// element of that module.
//
// RootNodeOffset is relative to the root record. LeftOffset and RightOffset
// are relative to the node. NodeOffset and KeyOffset are relative to the
// element containing the node.
type Descriptor struct {
	RootSize       uintptr // byte size of a root record
	ElementSize    uintptr // byte size of an element record
	RootNodeOffset uintptr // root → first node
	LeftOffset     uintptr // node → left child
	RightOffset    uintptr // node → right child
	NodeOffset     uintptr // element → node
	KeyOffset      uintptr // element → key
}

var _ treeharness.Accessor = (*Descriptor)(nil)

// Validate checks that every field fits into its record and is word aligned.
func (d *Descriptor) Validate() error {
	if d == nil {
		return fmt.Errorf("%w: nil descriptor", treeharness.ErrInvalidLayout)
	}
	if d.RootSize == 0 || d.ElementSize == 0 {
		return fmt.Errorf("%w: zero record size (root=%d, element=%d)",
			treeharness.ErrInvalidLayout, d.RootSize, d.ElementSize)
	}
	fields := [...]struct {
		name   string
		offset uintptr
		width  uintptr
		limit  uintptr
	}{
		{"root node", d.RootNodeOffset, wordSize, d.RootSize},
		{"node", d.NodeOffset, wordSize, d.ElementSize},
		{"key", d.KeyOffset, keySize, d.ElementSize},
		{"left child", d.NodeOffset + d.LeftOffset, wordSize, d.ElementSize},
		{"right child", d.NodeOffset + d.RightOffset, wordSize, d.ElementSize},
	}
	for _, f := range fields {
		if f.offset%wordSize != 0 {
			return fmt.Errorf("%w: %s offset %d is not word aligned",
				treeharness.ErrInvalidLayout, f.name, f.offset)
		}
		if f.offset+f.width > f.limit {
			return fmt.Errorf("%w: %s offset %d exceeds record size %d",
				treeharness.ErrInvalidLayout, f.name, f.offset, f.limit)
		}
	}
	if d.LeftOffset == d.RightOffset {
		return fmt.Errorf("%w: left and right child share offset %d",
			treeharness.ErrInvalidLayout, d.LeftOffset)
	}
	return nil
}

// FirstNode reads the node reference stored in the root record.
func (d *Descriptor) FirstNode(root treeharness.Root) treeharness.Node {
	return treeharness.Node(*(*unsafe.Pointer)(unsafe.Add(unsafe.Pointer(root), d.RootNodeOffset)))
}

// Left reads the left child reference of n.
func (d *Descriptor) Left(n treeharness.Node) treeharness.Node {
	return treeharness.Node(*(*unsafe.Pointer)(unsafe.Add(unsafe.Pointer(n), d.LeftOffset)))
}

// Right reads the right child reference of n.
func (d *Descriptor) Right(n treeharness.Node) treeharness.Node {
	return treeharness.Node(*(*unsafe.Pointer)(unsafe.Add(unsafe.Pointer(n), d.RightOffset)))
}

// Key reads the key of the element containing n. The node and key may live
// at different offsets of the element, so the node offset is subtracted
// before the key offset is added.
func (d *Descriptor) Key(n treeharness.Node) uint64 {
	return *(*uint64)(d.keyOfNode(n))
}

// SetKey overwrites the key of the element containing n. It is meant for
// test-data manipulation only.
func (d *Descriptor) SetKey(n treeharness.Node, key uint64) {
	*(*uint64)(d.keyOfNode(n)) = key
}

// ElementNode returns the node embedded in element e.
func (d *Descriptor) ElementNode(e treeharness.Element) treeharness.Node {
	return treeharness.Node(unsafe.Add(unsafe.Pointer(e), d.NodeOffset))
}

// ElementKey reads the key of element e.
func (d *Descriptor) ElementKey(e treeharness.Element) uint64 {
	return *(*uint64)(unsafe.Add(unsafe.Pointer(e), d.KeyOffset))
}

// SetElementKey writes the key of element e. Elements must not be linked
// into a tree when their key changes.
func (d *Descriptor) SetElementKey(e treeharness.Element, key uint64) {
	*(*uint64)(unsafe.Add(unsafe.Pointer(e), d.KeyOffset)) = key
}

func (d *Descriptor) keyOfNode(n treeharness.Node) unsafe.Pointer {
	elem := unsafe.Add(unsafe.Pointer(n), -int(d.NodeOffset))
	return unsafe.Add(elem, d.KeyOffset)
}

// Stride is the distance between two consecutive elements of an arena.
func (d *Descriptor) Stride() uintptr {
	return roundUp(d.ElementSize)
}

func roundUp(size uintptr) uintptr {
	return (size + wordSize - 1) &^ (wordSize - 1)
}
