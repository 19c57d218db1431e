/*
Command difftrees checks whether two tree modules build identical trees.

Usage:

	difftrees [flags] <moduleA> <moduleB>

A module is either the path of a plugin (a file ending in ".so") or the name
of a built-in module (avl, plain, sbt). Both modules receive the same keys,
0 … n-1 in shuffled order, and the resulting trees are compared node by
node. The verdict is "identical", "not identical" (followed by the first
difference found) or a stack overflow diagnostic for trees too deep to be
compared with the configured stack capacity.
*/
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/treeharness/compare"
	"github.com/npillmayer/treeharness/console"
	"github.com/npillmayer/treeharness/registry"
)

func main() {
	n := flag.Int("n", 1000000, "number of elements per tree")
	stack := flag.Int("stack", compare.DefaultStackCapacity, "traversal stack capacity")
	seed := flag.Int64("seed", 0, "seed for the key shuffle (0: from the clock)")
	traceLevel := flag.String("trace", "Error", "trace level (Error, Info, Debug)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <moduleA> <moduleB>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() < 2 {
		flag.Usage()
		os.Exit(1)
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.TraceLevelFromString(*traceLevel))
	//
	reg := registry.New()
	defer reg.Close()
	a, err := reg.Open(flag.Arg(0))
	if err != nil {
		fail(err)
	}
	b := a
	if flag.Arg(1) != flag.Arg(0) {
		if b, err = reg.Open(flag.Arg(1)); err != nil {
			fail(err)
		}
	}
	fmt.Printf("%s x %s\n", a.Name(), b.Name())
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	report, err := compare.BuildPair(a, b, *n, rand.New(rand.NewSource(*seed)),
		compare.Config{StackCapacity: *stack})
	if err != nil {
		fail(err)
	}
	console.NewPalette(console.ColorEnabled()).Verdict(os.Stdout, report)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "difftrees: %v\n", err)
	os.Exit(1)
}
