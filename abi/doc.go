/*
Package abi defines the contract a tree module has to fulfil.

A module exports a marker string and eleven capabilities. The marker has to
equal Magic. The capabilities are six size/offset queries, a balance query,
and the structural operations Init, Insert and Delete:

	MagicString             string
	GetRootSize             func() uintptr
	GetNodeSize             func() uintptr
	GetRootNodeOffset       func() uintptr
	GetLeftOffset           func() uintptr
	GetRightOffset          func() uintptr
	GetNodeOffsetInElement  func() uintptr
	GetKeyOffsetInElement   func() uintptr
	GetBalance              func(node unsafe.Pointer) int
	Init                    func(root unsafe.Pointer)
	Insert                  func(root, element unsafe.Pointer)
	Delete                  func(root unsafe.Pointer, key uint64)

Symbols are looked up through a SymbolTable, which *plugin.Plugin satisfies.
Modules compiled into the harness use Symbols, a plain map, instead.
Resolution is all-or-nothing: a module missing a single capability is
rejected as a whole.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package abi

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
