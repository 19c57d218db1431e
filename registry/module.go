package registry

import (
	"fmt"
	"unsafe"

	"github.com/npillmayer/treeharness"
	"github.com/npillmayer/treeharness/abi"
	"github.com/npillmayer/treeharness/layout"
)

// Module is a loaded tree module: its capability table together with the
// layout descriptor derived from it.
//
// Module implements treeharness.Shape, so every engine of the harness may
// walk trees built by it.
type Module struct {
	name   string
	ops    *abi.Table
	desc   *layout.Descriptor
	closed bool
}

var _ treeharness.Shape = (*Module)(nil)

// Name returns the name the module has been registered under.
func (m *Module) Name() string {
	return m.name
}

func (m *Module) String() string {
	return m.name
}

// Descriptor returns the module's layout.
func (m *Module) Descriptor() *layout.Descriptor {
	return m.desc
}

// Ops returns the module's resolved capabilities.
func (m *Module) Ops() *abi.Table {
	return m.ops
}

// FirstNode is part of interface treeharness.Accessor.
func (m *Module) FirstNode(root treeharness.Root) treeharness.Node {
	return m.desc.FirstNode(root)
}

// Left is part of interface treeharness.Accessor.
func (m *Module) Left(n treeharness.Node) treeharness.Node {
	return m.desc.Left(n)
}

// Right is part of interface treeharness.Accessor.
func (m *Module) Right(n treeharness.Node) treeharness.Node {
	return m.desc.Right(n)
}

// Key is part of interface treeharness.Accessor.
func (m *Module) Key(n treeharness.Node) uint64 {
	return m.desc.Key(n)
}

// Balance asks the module for the balance factor of n.
func (m *Module) Balance(n treeharness.Node) int {
	return m.ops.GetBalance(unsafe.Pointer(n))
}

// NewTree allocates an arena for capacity elements and initializes an empty
// tree in it.
func (m *Module) NewTree(capacity int) (*Tree, error) {
	if m.closed {
		return nil, fmt.Errorf("%w: %s", treeharness.ErrModuleClosed, m.name)
	}
	arena, err := layout.NewArena(m.desc, capacity)
	if err != nil {
		return nil, fmt.Errorf("module %s: %w", m.name, err)
	}
	t := &Tree{module: m, arena: arena}
	t.Init()
	return t, nil
}
