package compare

import (
	"math/rand"

	"github.com/npillmayer/treeharness/keys"
	"github.com/npillmayer/treeharness/registry"
)

// BuildPair builds one tree of n elements with each module and compares
// them. Tree A gets the keys 0 … n-1 in an order shuffled by rnd, tree B a
// copy of A's keys; both receive their elements in index order.
func BuildPair(ma, mb *registry.Module, n int, rnd *rand.Rand, cfg Config) (Report, error) {
	ta, err := ma.NewTree(n)
	if err != nil {
		return Report{}, err
	}
	defer ta.Free()
	tb, err := mb.NewTree(n)
	if err != nil {
		return Report{}, err
	}
	defer tb.Free()
	if err = keys.FillArena(ta.Arena(), n); err != nil {
		return Report{}, err
	}
	if err = keys.ShuffleArena(ta.Arena(), n, rnd); err != nil {
		return Report{}, err
	}
	if err = keys.CopyKeys(tb.Arena(), ta.Arena(), n); err != nil {
		return Report{}, err
	}
	for i := 0; i < n; i++ {
		ta.Insert(i)
		tb.Insert(i)
	}
	report, err := Trees(ma, ta.Root(), mb, tb.Root(), cfg)
	if err == nil {
		tracer().Infof("compare: %s x %s: %s", ma.Name(), mb.Name(), report.Verdict)
	}
	return report, err
}
