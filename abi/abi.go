package abi

import (
	"fmt"
	"plugin"
	"unsafe"

	"github.com/npillmayer/treeharness"
	"github.com/npillmayer/treeharness/layout"
)

// Magic is the value a module's marker symbol has to carry.
const Magic = "binary_tree_module"

// MagicSymbol is the name of the marker symbol.
const MagicSymbol = "MagicString"

// Capability symbol names.
const (
	SymRootSize   = "GetRootSize"
	SymNodeSize   = "GetNodeSize"
	SymRootNode   = "GetRootNodeOffset"
	SymLeft       = "GetLeftOffset"
	SymRight      = "GetRightOffset"
	SymNodeInElem = "GetNodeOffsetInElement"
	SymKeyInElem  = "GetKeyOffsetInElement"
	SymBalance    = "GetBalance"
	SymInit       = "Init"
	SymInsert     = "Insert"
	SymDelete     = "Delete"
)

// Capabilities lists every capability a module must export, in resolution
// order.
var Capabilities = [...]string{
	SymRootSize, SymNodeSize,
	SymRootNode, SymLeft, SymRight, SymNodeInElem, SymKeyInElem,
	SymBalance,
	SymDelete, SymInsert, SymInit,
}

// SymbolTable looks up exported symbols by name.
type SymbolTable interface {
	Lookup(name string) (plugin.Symbol, error)
}

var _ SymbolTable = (*plugin.Plugin)(nil)

// Symbols is a SymbolTable for modules compiled into the harness.
type Symbols map[string]any

// Lookup returns the symbol registered for name.
func (s Symbols) Lookup(name string) (plugin.Symbol, error) {
	sym, ok := s[name]
	if !ok || sym == nil {
		return nil, fmt.Errorf("symbol %s not found", name)
	}
	return sym, nil
}

// Table holds the resolved capabilities of a module. A Table returned by
// Resolve has every field set.
type Table struct {
	GetRootSize            func() uintptr
	GetNodeSize            func() uintptr
	GetRootNodeOffset      func() uintptr
	GetLeftOffset          func() uintptr
	GetRightOffset         func() uintptr
	GetNodeOffsetInElement func() uintptr
	GetKeyOffsetInElement  func() uintptr
	GetBalance             func(node unsafe.Pointer) int
	Init                   func(root unsafe.Pointer)
	Insert                 func(root, element unsafe.Pointer)
	Delete                 func(root unsafe.Pointer, key uint64)
}

// CheckMagic verifies a module's marker symbol. Plugins export the marker as
// a variable, which plugin.Lookup delivers as *string.
func CheckMagic(syms SymbolTable) error {
	sym, err := syms.Lookup(MagicSymbol)
	if err != nil {
		return fmt.Errorf("%w: %v", treeharness.ErrNotTreeModule, err)
	}
	var marker string
	switch m := sym.(type) {
	case *string:
		if m == nil {
			return fmt.Errorf("%w: nil marker", treeharness.ErrNotTreeModule)
		}
		marker = *m
	case string:
		marker = m
	default:
		return fmt.Errorf("%w: marker has type %T", treeharness.ErrNotTreeModule, sym)
	}
	if marker != Magic {
		return fmt.Errorf("%w: marker %.32q", treeharness.ErrNotTreeModule, marker)
	}
	return nil
}

// Resolve checks the marker and resolves every capability of a module.
// It returns a table only if all of them resolve with the expected types.
func Resolve(syms SymbolTable) (*Table, error) {
	if err := CheckMagic(syms); err != nil {
		return nil, err
	}
	var t Table
	targets := map[string]any{
		SymRootSize:   &t.GetRootSize,
		SymNodeSize:   &t.GetNodeSize,
		SymRootNode:   &t.GetRootNodeOffset,
		SymLeft:       &t.GetLeftOffset,
		SymRight:      &t.GetRightOffset,
		SymNodeInElem: &t.GetNodeOffsetInElement,
		SymKeyInElem:  &t.GetKeyOffsetInElement,
		SymBalance:    &t.GetBalance,
		SymInit:       &t.Init,
		SymInsert:     &t.Insert,
		SymDelete:     &t.Delete,
	}
	for _, name := range Capabilities {
		sym, err := syms.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", treeharness.ErrMissingSymbol, name)
		}
		if !assign(targets[name], sym) {
			return nil, fmt.Errorf("%w: %s has unexpected type %T", treeharness.ErrMissingSymbol, name, sym)
		}
	}
	tracer().Debugf("abi: resolved %d capabilities", len(Capabilities))
	return &t, nil
}

// assign stores sym into the table field target points to, if the types
// match and the function is non-nil.
func assign(target any, sym plugin.Symbol) bool {
	switch field := target.(type) {
	case *func() uintptr:
		f, ok := sym.(func() uintptr)
		if ok && f != nil {
			*field = f
			return true
		}
	case *func(unsafe.Pointer) int:
		f, ok := sym.(func(unsafe.Pointer) int)
		if ok && f != nil {
			*field = f
			return true
		}
	case *func(unsafe.Pointer):
		f, ok := sym.(func(unsafe.Pointer))
		if ok && f != nil {
			*field = f
			return true
		}
	case *func(unsafe.Pointer, unsafe.Pointer):
		f, ok := sym.(func(unsafe.Pointer, unsafe.Pointer))
		if ok && f != nil {
			*field = f
			return true
		}
	case *func(unsafe.Pointer, uint64):
		f, ok := sym.(func(unsafe.Pointer, uint64))
		if ok && f != nil {
			*field = f
			return true
		}
	}
	return false
}

// Descriptor queries a module's sizes and offsets and validates them.
func (t *Table) Descriptor() (*layout.Descriptor, error) {
	d := &layout.Descriptor{
		RootSize:       t.GetRootSize(),
		ElementSize:    t.GetNodeSize(),
		RootNodeOffset: t.GetRootNodeOffset(),
		LeftOffset:     t.GetLeftOffset(),
		RightOffset:    t.GetRightOffset(),
		NodeOffset:     t.GetNodeOffsetInElement(),
		KeyOffset:      t.GetKeyOffsetInElement(),
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}
