/*
Package registry holds the tree modules known to a harness run.

A Registry is created explicitly and owned by its caller; there is no global
module list. Modules enter it either as built-ins, compiled into the binary
and described by an abi.Symbols table, or as Go plugins loaded from shared
objects. LoadDir mirrors the classic discovery procedure: every file ending
in ".so" in a directory is tried, and files which are not tree modules are
skipped with a diagnostic.

Modules are enumerated in name order. Go plugins cannot be unloaded; closing
a registry marks its modules unusable but leaves loaded code mapped.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package registry

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
