package bench

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/guiguan/caster"
	"github.com/npillmayer/treeharness"
	"github.com/npillmayer/treeharness/keys"
	"github.com/npillmayer/treeharness/registry"
)

// DefaultOperations is the number of elements per run if none is configured.
const DefaultOperations = 1_000_000

// Phase denotes one of the two workloads of a run.
type Phase int

// Phases of a run, in execution order.
const (
	Ascending Phase = iota
	Shuffled
	phaseCount
)

func (p Phase) String() string {
	switch p {
	case Ascending:
		return "in-order"
	case Shuffled:
		return "random"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Config holds the parameters of a benchmark run.
type Config struct {
	Operations int   // elements inserted and deleted per phase
	Seed       int64 // seed for the shared key shuffle; 0 seeds from the wall clock
	Capture    bool  // record the key sequence of each phase in the results
}

func (cfg Config) normalized() Config {
	if cfg.Operations == 0 {
		cfg.Operations = DefaultOperations
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.Operations < 1 {
		return fmt.Errorf("%w: operations must be positive, is %d",
			treeharness.ErrInvalidConfig, cfg.Operations)
	}
	return nil
}

// Result holds the timings of one module.
type Result struct {
	Module string
	Times  [phaseCount]Timespec
	Keys   [phaseCount][]uint64 // key sequences, if captured
}

// Event is broadcast to subscribers after each phase.
type Event struct {
	Module  string
	Phase   Phase
	Elapsed Timespec
}

// Runner executes the benchmark workload for any number of modules, all of
// them sharing one shuffled key sequence.
type Runner struct {
	cfg  Config
	keys []uint64
	cast *caster.Caster
}

// NewRunner prepares the shared key sequence for a run.
func NewRunner(cfg Config) (*Runner, error) {
	cfg = cfg.normalized()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	shuffled := keys.FillAscending(cfg.Operations)
	keys.Shuffle(shuffled, rand.New(rand.NewSource(cfg.Seed)))
	tracer().Debugf("bench: %d operations, seed %d", cfg.Operations, cfg.Seed)
	return &Runner{
		cfg:  cfg,
		keys: shuffled,
		cast: caster.New(context.Background()),
	}, nil
}

// Config returns the runner's effective configuration.
func (r *Runner) Config() Config {
	return r.cfg
}

// Keys returns a copy of the shared shuffled key sequence.
func (r *Runner) Keys() []uint64 {
	return slices.Clone(r.keys)
}

// Subscribe returns a channel receiving an Event after every phase of every
// run. Subscribers have to drain their channel, as publishing blocks while
// a subscriber's buffer is full. The subscription ends when ctx is done or
// the runner is closed.
func (r *Runner) Subscribe(ctx context.Context, capacity uint) (<-chan interface{}, bool) {
	return r.cast.Sub(ctx, capacity)
}

// Close ends all subscriptions.
func (r *Runner) Close() {
	r.cast.Close()
}

func (r *Runner) publish(module string, phase Phase, elapsed Timespec) {
	tracer().Debugf("bench: %s %s: %s", module, phase, elapsed)
	r.cast.Pub(Event{Module: module, Phase: phase, Elapsed: elapsed})
}

// Run measures one module.
func (r *Runner) Run(m *registry.Module) (Result, error) {
	n := r.cfg.Operations
	result := Result{Module: m.Name()}
	tree, err := m.NewTree(n)
	if err != nil {
		return result, err
	}
	defer tree.Free()
	arena := tree.Arena()
	arena.Touch()
	tree.Init()
	//
	if err = keys.FillArena(arena, n); err != nil {
		return result, err
	}
	r.capture(&result, Ascending, tree)
	result.Times[Ascending] = timeTree(tree, n)
	r.publish(result.Module, Ascending, result.Times[Ascending])
	//
	if err = keys.AssignKeys(arena, r.keys, n); err != nil {
		return result, err
	}
	r.capture(&result, Shuffled, tree)
	result.Times[Shuffled] = timeTree(tree, n)
	r.publish(result.Module, Shuffled, result.Times[Shuffled])
	return result, nil
}

func timeTree(tree *registry.Tree, n int) Timespec {
	start := Now()
	for i := 0; i < n; i++ {
		tree.Insert(i)
	}
	for i := 0; i < n; i++ {
		tree.Delete(i)
	}
	return Elapsed(Now(), start)
}

func (r *Runner) capture(result *Result, phase Phase, tree *registry.Tree) {
	if !r.cfg.Capture {
		return
	}
	result.Keys[phase], _ = keys.ArenaKeys(tree.Arena(), r.cfg.Operations)
}

// RunAll measures every module of a registry in name order. A module which
// fails does not stop the run; its error is joined into the returned error.
func (r *Runner) RunAll(reg *registry.Registry) ([]Result, error) {
	var results []Result
	var errs []error
	reg.Each(func(m *registry.Module) bool {
		result, err := r.Run(m)
		if err != nil {
			tracer().Errorf("bench: module %s: %v", m.Name(), err)
			errs = append(errs, err)
			return true
		}
		results = append(results, result)
		return true
	})
	return results, errors.Join(errs...)
}

// RunBaseline measures a library tree with the same workload.
func (r *Runner) RunBaseline(b Baseline) Result {
	n := r.cfg.Operations
	result := Result{Module: b.Name()}
	b.Reset()
	ascending := keys.FillAscending(n)
	for phase, seq := range [phaseCount][]uint64{ascending, r.keys} {
		if r.cfg.Capture {
			result.Keys[phase] = slices.Clone(seq)
		}
		start := Now()
		for _, k := range seq {
			b.Insert(k)
		}
		for _, k := range seq {
			b.Delete(k)
		}
		result.Times[phase] = Elapsed(Now(), start)
		r.publish(result.Module, Phase(phase), result.Times[phase])
	}
	return result
}
