package registry

import (
	"fmt"
	"unsafe"

	"github.com/npillmayer/treeharness"
	"github.com/npillmayer/treeharness/layout"
)

// Tree is one tree instance of a module, living in its own arena.
//
// Elements are addressed by index. Insert and Delete operate on elements
// whose keys have been assigned beforehand, which is what the benchmark and
// comparison workloads do. Append and DeleteKey serve interactive use.
type Tree struct {
	module *Module
	arena  *layout.Arena
	used   int
}

// Init resets the tree to empty. Element keys are left untouched.
func (t *Tree) Init() {
	t.module.ops.Init(unsafe.Pointer(t.arena.Root()))
	t.used = 0
}

// Insert links element i into the tree.
func (t *Tree) Insert(i int) {
	t.module.ops.Insert(unsafe.Pointer(t.arena.Root()), unsafe.Pointer(t.arena.Element(i)))
}

// Delete removes the key currently held by element i from the tree.
func (t *Tree) Delete(i int) {
	t.module.ops.Delete(unsafe.Pointer(t.arena.Root()), t.arena.Key(i))
}

// DeleteKey removes key from the tree, if present.
func (t *Tree) DeleteKey(key uint64) {
	t.module.ops.Delete(unsafe.Pointer(t.arena.Root()), key)
}

// Append stores key in the next element not handed out yet and inserts it.
// It fails with ErrResourceExhausted once every element has been used.
func (t *Tree) Append(key uint64) error {
	if t.used >= t.arena.Len() {
		return fmt.Errorf("%w: all %d elements in use", treeharness.ErrResourceExhausted, t.arena.Len())
	}
	t.arena.SetKey(t.used, key)
	t.Insert(t.used)
	t.used++
	return nil
}

// Root returns the tree's root record.
func (t *Tree) Root() treeharness.Root {
	return t.arena.Root()
}

// Arena returns the memory the tree lives in.
func (t *Tree) Arena() *layout.Arena {
	return t.arena
}

// Module returns the module the tree has been built with.
func (t *Tree) Module() *Module {
	return t.module
}

// Len returns the number of elements of the tree's arena.
func (t *Tree) Len() int {
	return t.arena.Len()
}

// Free releases the tree's memory.
func (t *Tree) Free() {
	t.arena.Free()
	t.used = 0
}
