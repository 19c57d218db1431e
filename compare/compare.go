/*
Package compare decides whether two trees are structurally identical.

Two trees are identical if they have the same shape and corresponding nodes
hold equal keys. The trees may come from different modules with different
node layouts; both are walked through their accessors only.

The comparison descends both trees in lock-step using a pair of traversal
stacks of fixed capacity. If a tree is too deep or too bushy for that
capacity, the verdict is StackOverflow: neither identical nor different,
but inconclusive.
*/
package compare

import (
	"fmt"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/treeharness"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// DefaultStackCapacity is the traversal stack capacity used if none is
// configured.
const DefaultStackCapacity = 1024

// Config holds the parameters of a comparison.
type Config struct {
	StackCapacity int // capacity of each of the two traversal stacks
}

func (cfg Config) normalized() Config {
	if cfg.StackCapacity == 0 {
		cfg.StackCapacity = DefaultStackCapacity
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.StackCapacity < 1 {
		return fmt.Errorf("%w: stack capacity must be positive, is %d",
			treeharness.ErrInvalidConfig, cfg.StackCapacity)
	}
	return nil
}

// Verdict is the outcome of a comparison.
type Verdict int

// Verdicts of a comparison.
const (
	Identical Verdict = iota
	Different
	StackOverflow
)

func (v Verdict) String() string {
	switch v {
	case Identical:
		return "identical"
	case Different:
		return "not identical"
	case StackOverflow:
		return "stack overflow"
	}
	return fmt.Sprintf("Verdict(%d)", int(v))
}

// MismatchKind tells how two trees differ.
type MismatchKind int

// Kinds of structural mismatch.
const (
	KeyMismatch       MismatchKind = iota // corresponding nodes hold different keys
	ShapeMismatch                         // a child is present in one tree only
	EmptinessMismatch                     // exactly one of the trees is empty
)

func (k MismatchKind) String() string {
	switch k {
	case KeyMismatch:
		return "keys differ"
	case ShapeMismatch:
		return "shapes differ"
	case EmptinessMismatch:
		return "one tree is empty"
	}
	return fmt.Sprintf("MismatchKind(%d)", int(k))
}

// Side denotes the child position where a shape mismatch was found.
type Side int

// Child positions.
const (
	NoSide Side = iota
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "-"
}

// Mismatch describes the first difference found. For key mismatches KeyA and
// KeyB are the differing keys. For shape mismatches they are the keys of the
// corresponding parents, and Side tells which child is missing on one side.
type Mismatch struct {
	Kind MismatchKind
	KeyA uint64
	KeyB uint64
	Side Side
}

func (m Mismatch) String() string {
	switch m.Kind {
	case KeyMismatch:
		return fmt.Sprintf("keys differ a=%d b=%d", m.KeyA, m.KeyB)
	case ShapeMismatch:
		return fmt.Sprintf("%s child present on one side only below a=%d b=%d", m.Side, m.KeyA, m.KeyB)
	}
	return m.Kind.String()
}

// Report is the result of a comparison. Checked counts the node pairs
// compared, MaxDepth is the largest number of pairs held on the traversal
// stacks at once.
type Report struct {
	Verdict  Verdict
	Mismatch *Mismatch // set for verdict Different
	Checked  int
	MaxDepth int
}

// Err returns ErrStackOverflow for an inconclusive comparison and nil
// otherwise. A Different verdict is a result, not an error.
func (r Report) Err() error {
	if r.Verdict == StackOverflow {
		return fmt.Errorf("%w after %d node pairs", treeharness.ErrStackOverflow, r.Checked)
	}
	return nil
}

func (r Report) String() string {
	if r.Mismatch != nil {
		return fmt.Sprintf("%s: %s", r.Verdict, r.Mismatch)
	}
	return r.Verdict.String()
}

type pair struct {
	a, b treeharness.Node
}

// Trees compares tree ra, walked by accessor a, with tree rb, walked by
// accessor b. An error is returned for invalid configurations only; the
// outcome of the comparison is the report's verdict.
func Trees(a treeharness.Accessor, ra treeharness.Root, b treeharness.Accessor, rb treeharness.Root, cfg Config) (Report, error) {
	cfg = cfg.normalized()
	if err := cfg.validate(); err != nil {
		return Report{}, err
	}
	var report Report
	na, nb := a.FirstNode(ra), b.FirstNode(rb)
	if na == nil && nb == nil {
		return report, nil
	}
	if na == nil || nb == nil {
		report.Verdict = Different
		report.Mismatch = &Mismatch{Kind: EmptinessMismatch}
		return report, nil
	}
	stack, err := treeharness.NewStack[pair](cfg.StackCapacity)
	if err != nil {
		return report, err
	}
	stack.Push(pair{na, nb})
	for !stack.IsEmpty() {
		report.Checked++
		p := stack.Pop()
		ka, kb := a.Key(p.a), b.Key(p.b)
		if ka != kb {
			return finish(report, stack, &Mismatch{Kind: KeyMismatch, KeyA: ka, KeyB: kb}), nil
		}
		children := [...]struct {
			side Side
			a, b treeharness.Node
		}{
			{Left, a.Left(p.a), b.Left(p.b)},
			{Right, a.Right(p.a), b.Right(p.b)},
		}
		for _, ch := range children {
			if ch.a == nil && ch.b == nil {
				continue
			}
			if ch.a == nil || ch.b == nil {
				m := &Mismatch{Kind: ShapeMismatch, KeyA: ka, KeyB: kb, Side: ch.side}
				return finish(report, stack, m), nil
			}
			if !stack.Push(pair{ch.a, ch.b}) {
				report.Verdict = StackOverflow
				return finish(report, stack, nil), nil
			}
		}
	}
	return finish(report, stack, nil), nil
}

func finish(report Report, stack *treeharness.Stack[pair], m *Mismatch) Report {
	report.MaxDepth = stack.MaxDepth()
	if m != nil {
		report.Verdict = Different
		report.Mismatch = m
		tracer().Infof("compare: %s", m)
	}
	tracer().Debugf("compare: maximum stack size = %d", report.MaxDepth)
	tracer().Debugf("compare: total elements checked = %d", report.Checked)
	return report
}
