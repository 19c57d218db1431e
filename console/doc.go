/*
Package console connects the harness to a terminal.

It derives grid dimensions from the terminal's size, colours verdicts and
markers, and runs the interactive session of the printtree tool.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package console

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
