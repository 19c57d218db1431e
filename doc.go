/*
Package treeharness exercises and compares pluggable binary search trees
without static knowledge of their node layout.

Tree Modules

A tree module is an independently built unit implementing one tree variant.
It describes its memory layout through a small introspection ABI (see package
abi): the byte size of a root record and of an element record, and the byte
offsets of the root's first-node reference, of a node's left and right child
references, and of the node and key fields within an element. Modules are
either compiled into the harness and registered as built-ins, or built with
`go build -buildmode=plugin` and loaded at run time.

From those offsets the harness derives an accessor (see package layout) and
drives every algorithm exclusively through it:

  - compare checks two trees for structural identity,
  - render prints a tree as a fixed-size character grid,
  - bench measures insert/delete throughput for ascending and shuffled keys.

None of these packages knows a module's native node type. Their auxiliary
memory is bounded by explicit traversal-stack capacities; exceeding one is
reported as a distinct, recoverable outcome.

Everything runs single-threaded and synchronously.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2024–26, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package treeharness

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// HarnessError is an error type for the tree harness.
type HarnessError string

func (e HarnessError) Error() string {
	return string(e)
}

// ErrNotTreeModule is flagged when a module's marker symbol is absent or
// does not match the expected identifier.
const ErrNotTreeModule = HarnessError("not a tree module")

// ErrMissingSymbol is flagged when a module lacks a capability or exports it
// with an unexpected type.
const ErrMissingSymbol = HarnessError("missing symbol")

// ErrInvalidLayout is flagged when a module's declared sizes and offsets are
// inconsistent.
const ErrInvalidLayout = HarnessError("invalid tree layout")

// ErrDuplicateModule is flagged when a module name is registered twice.
const ErrDuplicateModule = HarnessError("duplicate module")

// ErrUnknownModule is flagged when a module name is not registered.
const ErrUnknownModule = HarnessError("unknown module")

// ErrModuleClosed is flagged when a module or registry is used after it has
// been released.
const ErrModuleClosed = HarnessError("module closed")

// ErrStackOverflow signals that a traversal stack's capacity was exceeded.
// The operation is inconclusive, not failed.
const ErrStackOverflow = HarnessError("traversal stack overflow")

// ErrGridOverflow signals that a rendered tree does not fit the print grid.
const ErrGridOverflow = HarnessError("print grid overflow")

// ErrEmptyTree is flagged when an operation requires at least one node.
const ErrEmptyTree = HarnessError("empty tree")

// ErrResourceExhausted is flagged when element arrays or stacks cannot be
// allocated.
const ErrResourceExhausted = HarnessError("resource exhausted")

// ErrInvalidConfig is flagged whenever configuration parameters are invalid.
const ErrInvalidConfig = HarnessError("invalid configuration")
