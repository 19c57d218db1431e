/*
Package render draws trees.

A Printer lays a tree out on a character grid of fixed size. Every node gets
a slot of fixed width, holding its zero-padded key followed by a glyph for
its balance factor. Slots are placed left to right in in-order sequence and
top to bottom by depth; connections between nodes are not drawn:

	  01
	00  03
	  02  04

A tree which does not fit the grid is an error, never a truncated picture.

Dot writes a tree in Graphviz DOT format, for debugging purposes.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package render

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
