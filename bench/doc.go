/*
Package bench measures the throughput of tree modules.

Every module runs the same workload. A tree of n elements is built in a fresh
arena, which is touched once before any measurement. In the ascending phase
the keys 0 … n-1 are inserted in order and then deleted in the same order.
In the shuffled phase the elements receive a key sequence shuffled once per
Runner, shared by all modules of a run, and are again inserted and deleted
in index order. The tree is initialized once, before the first phase.

Elapsed times are taken from a monotonic clock and reported as seconds and
nanoseconds. Progress events are broadcast to subscribers after every phase,
outside of the timed regions.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package bench

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
