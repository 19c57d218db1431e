package bench

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
	"github.com/petar/GoLLRB/llrb"
)

// Baseline is a tree from a container library, measured for comparison with
// the tree modules.
type Baseline interface {
	Name() string
	Insert(key uint64)
	Delete(key uint64)
	Reset()
}

// --- Left-leaning red-black tree -------------------------------------------

type llrbKey uint64

func (k llrbKey) Less(than llrb.Item) bool {
	return k < than.(llrbKey)
}

type llrbBaseline struct {
	tree *llrb.LLRB
}

// LLRBBaseline measures github.com/petar/GoLLRB.
func LLRBBaseline() Baseline {
	return &llrbBaseline{tree: llrb.New()}
}

func (b *llrbBaseline) Name() string      { return "llrb (baseline)" }
func (b *llrbBaseline) Insert(key uint64) { b.tree.ReplaceOrInsert(llrbKey(key)) }
func (b *llrbBaseline) Delete(key uint64) { b.tree.Delete(llrbKey(key)) }
func (b *llrbBaseline) Reset()            { b.tree = llrb.New() }

// --- Red-black tree ----------------------------------------------------------

type redBlackBaseline struct {
	tree *redblacktree.Tree
}

// RedBlackBaseline measures the red-black tree of github.com/emirpasic/gods.
func RedBlackBaseline() Baseline {
	return &redBlackBaseline{tree: redblacktree.NewWith(utils.UInt64Comparator)}
}

func (b *redBlackBaseline) Name() string      { return "redblack (baseline)" }
func (b *redBlackBaseline) Insert(key uint64) { b.tree.Put(key, nil) }
func (b *redBlackBaseline) Delete(key uint64) { b.tree.Remove(key) }
func (b *redBlackBaseline) Reset()            { b.tree.Clear() }
