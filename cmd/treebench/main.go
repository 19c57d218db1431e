/*
Command treebench measures insert and delete throughput of tree modules.

Usage:

	treebench [flags]

Every plugin found in the module directory (files ending in ".so") is
loaded, together with the built-in modules selected by -builtins. Each
module then inserts and deletes n elements twice, first with ascending keys,
then with keys in a shuffled order shared by all modules. The elapsed time
of each phase is printed per module.

The plain module degenerates to a linked list on ascending keys and is
therefore not among the default built-ins.
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/treeharness/bench"
	"github.com/npillmayer/treeharness/registry"
	"github.com/npillmayer/treeharness/report"
	"github.com/npillmayer/uax/uax11"
)

func main() {
	n := flag.Int("n", bench.DefaultOperations, "elements inserted and deleted per phase")
	seed := flag.Int64("seed", 0, "seed for the key shuffle (0: from the clock)")
	dir := flag.String("dir", ".", "directory to load plugins from")
	builtins := flag.String("builtins", "avl,sbt", "comma separated built-in modules to include")
	baseline := flag.Bool("baseline", false, "include container library trees for comparison")
	table := flag.Bool("table", false, "print results as an aligned table")
	htmlOut := flag.String("html", "", "write results as an HTML table to this file")
	progress := flag.Bool("progress", false, "report each finished phase on stderr")
	traceLevel := flag.String("trace", "Error", "trace level (Error, Info, Debug)")
	flag.Parse()
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.TraceLevelFromString(*traceLevel))
	//
	reg := registry.New()
	defer reg.Close()
	if _, err := reg.LoadDir(*dir); err != nil {
		gtrace.CoreTracer.Errorf("treebench: %v", err)
	}
	if names := selected(*builtins); len(names) > 0 {
		if err := registry.LoadBuiltins(reg, names...); err != nil {
			fail(err)
		}
	}
	runner, err := bench.NewRunner(bench.Config{Operations: *n, Seed: *seed})
	if err != nil {
		fail(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := watch(ctx, runner, *progress)
	results, err := runner.RunAll(reg)
	if err != nil {
		gtrace.CoreTracer.Errorf("treebench: %v", err)
	}
	if *baseline {
		results = append(results,
			runner.RunBaseline(bench.LLRBBaseline()),
			runner.RunBaseline(bench.RedBlackBaseline()))
	}
	runner.Close()
	<-done
	//
	if *table {
		err = report.Table(os.Stdout, results, uax11.LatinContext)
	} else {
		err = report.Plain(os.Stdout, results)
	}
	if err != nil {
		fail(err)
	}
	if *htmlOut != "" {
		if err = writeHTML(*htmlOut, results); err != nil {
			fail(err)
		}
	}
}

// watch prints an event for every finished phase, if enabled. The returned
// channel is closed once the runner has been closed and all events are out.
func watch(ctx context.Context, runner *bench.Runner, enabled bool) <-chan struct{} {
	done := make(chan struct{})
	if !enabled {
		close(done)
		return done
	}
	events, ok := runner.Subscribe(ctx, 16)
	if !ok {
		close(done)
		return done
	}
	go func() {
		defer close(done)
		for msg := range events {
			if ev, isEvent := msg.(bench.Event); isEvent {
				fmt.Fprintf(os.Stderr, "%-12s %-8s %s\n", ev.Module, ev.Phase, ev.Elapsed)
			}
		}
	}()
	return done
}

func selected(list string) []string {
	var names []string
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func writeHTML(path string, results []bench.Result) (err error) {
	var f io.WriteCloser
	if f, err = os.Create(path); err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return report.HTML(f, results)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "treebench: %v\n", err)
	os.Exit(1)
}
