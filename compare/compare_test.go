package compare

import (
	"math/rand"
	"testing"
	"unsafe"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/treeharness"
	"github.com/npillmayer/treeharness/abi"
	"github.com/npillmayer/treeharness/keys"
	"github.com/npillmayer/treeharness/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mirror is an unbalanced search tree with the node first in its element,
// opposite to module plain, which keeps its node last.
type mnode struct {
	left, right *mnode
}

type melement struct {
	node mnode
	key  uint64
}

type mroot struct {
	top *mnode
}

var mirrorMagic = abi.Magic

func mirrorSymbols() abi.Symbols {
	return abi.Symbols{
		abi.MagicSymbol:   &mirrorMagic,
		abi.SymRootSize:   func() uintptr { return unsafe.Sizeof(mroot{}) },
		abi.SymNodeSize:   func() uintptr { return unsafe.Sizeof(melement{}) },
		abi.SymRootNode:   func() uintptr { return unsafe.Offsetof(mroot{}.top) },
		abi.SymLeft:       func() uintptr { return unsafe.Offsetof(mnode{}.left) },
		abi.SymRight:      func() uintptr { return unsafe.Offsetof(mnode{}.right) },
		abi.SymNodeInElem: func() uintptr { return unsafe.Offsetof(melement{}.node) },
		abi.SymKeyInElem:  func() uintptr { return unsafe.Offsetof(melement{}.key) },
		abi.SymBalance:    func(unsafe.Pointer) int { return 0 },
		abi.SymInit:       func(r unsafe.Pointer) { (*mroot)(r).top = nil },
		abi.SymInsert: func(r, e unsafe.Pointer) {
			elem := (*melement)(e)
			link := &(*mroot)(r).top
			for *link != nil {
				k := (*melement)(unsafe.Pointer(*link)).key
				if elem.key == k {
					return
				} else if elem.key < k {
					link = &(*link).left
				} else {
					link = &(*link).right
				}
			}
			elem.node = mnode{}
			*link = &elem.node
		},
		abi.SymDelete: func(unsafe.Pointer, uint64) {}, // not exercised
	}
}

func setup(t *testing.T) *registry.Registry {
	gtrace.CoreTracer = gotestingadapter.New(t)
	t.Cleanup(func() { gtrace.CoreTracer = gtrace.NoOpTrace })
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	reg := registry.New()
	t.Cleanup(reg.Close)
	require.NoError(t, registry.LoadBuiltins(reg))
	_, err := reg.Load("mirror", mirrorSymbols())
	require.NoError(t, err)
	return reg
}

func module(t *testing.T, reg *registry.Registry, name string) *registry.Module {
	m, err := reg.Get(name)
	require.NoError(t, err)
	return m
}

func find(acc treeharness.Accessor, n treeharness.Node, key uint64) treeharness.Node {
	for n != nil {
		k := acc.Key(n)
		switch {
		case key == k:
			return n
		case key < k:
			n = acc.Left(n)
		default:
			n = acc.Right(n)
		}
	}
	return nil
}

func TestEmptyTrees(t *testing.T) {
	reg := setup(t)
	a, b := module(t, reg, "avl"), module(t, reg, "sbt")
	ta, err := a.NewTree(1)
	require.NoError(t, err)
	tb, err := b.NewTree(1)
	require.NoError(t, err)
	report, err := Trees(a, ta.Root(), b, tb.Root(), Config{})
	require.NoError(t, err)
	assert.Equal(t, Identical, report.Verdict)
	assert.Zero(t, report.Checked)
	//
	require.NoError(t, tb.Append(7))
	report, err = Trees(a, ta.Root(), b, tb.Root(), Config{})
	require.NoError(t, err)
	assert.Equal(t, Different, report.Verdict)
	require.NotNil(t, report.Mismatch)
	assert.Equal(t, EmptinessMismatch, report.Mismatch.Kind)
	assert.NoError(t, report.Err())
}

func TestIndependentCopiesAreIdentical(t *testing.T) {
	reg := setup(t)
	_, err := reg.Load("avl-copy", registry.Builtins()["avl"])
	require.NoError(t, err)
	report, err := BuildPair(module(t, reg, "avl"), module(t, reg, "avl-copy"), 5000,
		rand.New(rand.NewSource(42)), Config{})
	require.NoError(t, err)
	assert.Equal(t, Identical, report.Verdict, report.String())
	assert.Equal(t, 5000, report.Checked)
	assert.Greater(t, report.MaxDepth, 1)
}

func TestAcrossLayouts(t *testing.T) {
	reg := setup(t)
	ma, mb := module(t, reg, "plain"), module(t, reg, "mirror")
	const n = 1000
	ta, err := ma.NewTree(n)
	require.NoError(t, err)
	defer ta.Free()
	tb, err := mb.NewTree(n)
	require.NoError(t, err)
	defer tb.Free()
	k := keys.FillAscending(n)
	keys.Shuffle(k, rand.New(rand.NewSource(1000)))
	require.NoError(t, keys.AssignKeys(ta.Arena(), k, n))
	require.NoError(t, keys.CopyKeys(tb.Arena(), ta.Arena(), n))
	for i := 0; i < n; i++ {
		ta.Insert(i)
		tb.Insert(i)
	}
	report, err := Trees(ma, ta.Root(), mb, tb.Root(), Config{})
	require.NoError(t, err)
	require.Equal(t, Identical, report.Verdict, report.String())
	assert.Equal(t, n, report.Checked)
	//
	node := find(mb, mb.FirstNode(tb.Root()), 500)
	require.NotNil(t, node)
	mb.Descriptor().SetKey(node, 1000)
	report, err = Trees(ma, ta.Root(), mb, tb.Root(), Config{})
	require.NoError(t, err)
	assert.Equal(t, Different, report.Verdict)
	if assert.NotNil(t, report.Mismatch) {
		assert.Equal(t, KeyMismatch, report.Mismatch.Kind)
		assert.Equal(t, uint64(500), report.Mismatch.KeyA)
		assert.Equal(t, uint64(1000), report.Mismatch.KeyB)
	}
}

func TestShapeMismatch(t *testing.T) {
	reg := setup(t)
	ma, mb := module(t, reg, "plain"), module(t, reg, "mirror")
	ta, _ := ma.NewTree(3)
	tb, _ := mb.NewTree(3)
	for _, k := range []uint64{2, 1, 3} {
		require.NoError(t, ta.Append(k))
	}
	for _, k := range []uint64{2, 1} {
		require.NoError(t, tb.Append(k))
	}
	report, err := Trees(ma, ta.Root(), mb, tb.Root(), Config{})
	require.NoError(t, err)
	assert.Equal(t, Different, report.Verdict)
	if assert.NotNil(t, report.Mismatch) {
		assert.Equal(t, ShapeMismatch, report.Mismatch.Kind)
		assert.Equal(t, Right, report.Mismatch.Side)
		assert.Equal(t, uint64(2), report.Mismatch.KeyA)
	}
}

func TestStackOverflowIsInconclusive(t *testing.T) {
	reg := setup(t)
	m := module(t, reg, "plain")
	ta, _ := m.NewTree(3)
	tb, _ := m.NewTree(3)
	for _, k := range []uint64{2, 1, 3} {
		require.NoError(t, ta.Append(k))
		require.NoError(t, tb.Append(k))
	}
	report, err := Trees(m, ta.Root(), m, tb.Root(), Config{StackCapacity: 1})
	require.NoError(t, err)
	assert.Equal(t, StackOverflow, report.Verdict)
	assert.ErrorIs(t, report.Err(), treeharness.ErrStackOverflow)
	//
	report, err = Trees(m, ta.Root(), m, tb.Root(), Config{StackCapacity: 2})
	require.NoError(t, err)
	assert.Equal(t, Identical, report.Verdict)
	assert.Equal(t, 2, report.MaxDepth)
}

func TestInvalidConfig(t *testing.T) {
	reg := setup(t)
	m := module(t, reg, "avl")
	tr, _ := m.NewTree(1)
	_, err := Trees(m, tr.Root(), m, tr.Root(), Config{StackCapacity: -1})
	assert.ErrorIs(t, err, treeharness.ErrInvalidConfig)
}
