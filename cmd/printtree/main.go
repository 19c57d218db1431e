/*
Command printtree edits a tree interactively and prints it.

Usage:

	printtree [flags] <module>

Commands are read from standard input, one per line:

	i<value>   insert a key
	d<value>   delete a key
	p          print the tree
	q          quit (as does an empty line)

Printing shows the tree as a character grid, or an error marker if the tree
is empty or does not fit the grid. The grid adapts to the terminal's size
unless -rows or -cols is given.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/treeharness/console"
	"github.com/npillmayer/treeharness/registry"
)

func main() {
	rows := flag.Int("rows", 0, "grid height (0: from terminal)")
	cols := flag.Int("cols", 0, "grid width (0: from terminal)")
	keyWidth := flag.Int("keywidth", 0, "digits per key (0: default)")
	capacity := flag.Int("capacity", 1024, "maximum number of insertions")
	traceLevel := flag.String("trace", "Error", "trace level (Error, Info, Debug)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <module>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.TraceLevelFromString(*traceLevel))
	//
	reg := registry.New()
	defer reg.Close()
	m, err := reg.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't load module: %v\n", err)
		os.Exit(1)
	}
	cfg := console.ConfigFromTerminal()
	if *rows > 0 {
		cfg.Rows = *rows
	}
	if *cols > 0 {
		cfg.Columns = *cols
	}
	if *keyWidth > 0 {
		cfg.KeyWidth = *keyWidth
	}
	session, err := console.NewSession(m, *capacity, cfg, console.NewPalette(console.ColorEnabled()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "printtree: %v\n", err)
		os.Exit(1)
	}
	defer session.Close()
	if err := session.Run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "printtree: %v\n", err)
	}
}
