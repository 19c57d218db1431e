package registry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/treeharness"
	"github.com/npillmayer/treeharness/abi"
	"github.com/npillmayer/treeharness/modules/avl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inorder(m *Module, n treeharness.Node, keys []uint64) []uint64 {
	if n == nil {
		return keys
	}
	keys = inorder(m, m.Left(n), keys)
	keys = append(keys, m.Key(n))
	return inorder(m, m.Right(n), keys)
}

func TestBuiltinsInNameOrder(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	defer func() { gtrace.CoreTracer = gtrace.NoOpTrace }()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	reg := New()
	defer reg.Close()
	require.NoError(t, LoadBuiltins(reg))
	assert.Equal(t, []string{"avl", "plain", "sbt"}, reg.Names())
	assert.Equal(t, 3, reg.Len())
	m, err := reg.Get("sbt")
	require.NoError(t, err)
	assert.Equal(t, "sbt", m.Name())
	assert.NotZero(t, m.Descriptor().NodeOffset)
}

func TestDuplicateAndUnknown(t *testing.T) {
	reg := New()
	_, err := reg.Load("avl", avl.Symbols())
	require.NoError(t, err)
	_, err = reg.Load("avl", avl.Symbols())
	assert.ErrorIs(t, err, treeharness.ErrDuplicateModule)
	_, err = reg.Get("rbtree")
	assert.ErrorIs(t, err, treeharness.ErrUnknownModule)
	_, err = reg.Open("rbtree")
	assert.ErrorIs(t, err, treeharness.ErrUnknownModule)
}

func TestRejectedModulesStayUnregistered(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	defer func() { gtrace.CoreTracer = gtrace.NoOpTrace }()
	//
	reg := New()
	noMarker := avl.Symbols()
	delete(noMarker, abi.MagicSymbol)
	_, err := reg.Load("nomarker", noMarker)
	assert.ErrorIs(t, err, treeharness.ErrNotTreeModule)
	//
	noInsert := avl.Symbols()
	delete(noInsert, abi.SymInsert)
	_, err = reg.Load("noinsert", noInsert)
	assert.ErrorIs(t, err, treeharness.ErrMissingSymbol)
	//
	badLayout := avl.Symbols()
	badLayout[abi.SymKeyInElem] = func() uintptr { return 4096 }
	_, err = reg.Load("badlayout", badLayout)
	assert.ErrorIs(t, err, treeharness.ErrInvalidLayout)
	//
	assert.Zero(t, reg.Len())
}

func TestLoadDirSkipsNonModules(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	defer func() { gtrace.CoreTracer = gtrace.NoOpTrace }()
	//
	dir := t.TempDir()
	for _, name := range []string{"bogus.so", ".hidden.so", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("no ELF here"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir.so"), 0o755))
	reg := New()
	loaded, err := reg.LoadDir(dir)
	assert.Empty(t, loaded)
	require.Error(t, err)
	assert.ErrorIs(t, err, treeharness.ErrNotTreeModule)
	assert.Contains(t, err.Error(), "bogus.so")
	assert.False(t, strings.Contains(err.Error(), ".hidden.so"))
	assert.Zero(t, reg.Len())
}

func TestCloseInvalidatesModules(t *testing.T) {
	reg := New()
	require.NoError(t, LoadBuiltins(reg, "avl"))
	m, err := reg.Get("avl")
	require.NoError(t, err)
	reg.Close()
	_, err = m.NewTree(4)
	assert.ErrorIs(t, err, treeharness.ErrModuleClosed)
	_, err = reg.Get("avl")
	assert.ErrorIs(t, err, treeharness.ErrModuleClosed)
	_, err = reg.Load("sbt", Builtins()["sbt"])
	assert.ErrorIs(t, err, treeharness.ErrModuleClosed)
	reg.Close()
}

func TestTreeLifecycle(t *testing.T) {
	reg := New()
	defer reg.Close()
	require.NoError(t, LoadBuiltins(reg))
	reg.Each(func(m *Module) bool {
		tree, err := m.NewTree(5)
		require.NoError(t, err, m.Name())
		defer tree.Free()
		for _, k := range []uint64{50, 20, 80, 10, 30} {
			require.NoError(t, tree.Append(k), m.Name())
		}
		assert.ErrorIs(t, tree.Append(99), treeharness.ErrResourceExhausted, m.Name())
		assert.Equal(t, []uint64{10, 20, 30, 50, 80}, inorder(m, m.FirstNode(tree.Root()), nil), m.Name())
		tree.Delete(0) // element 0 holds key 50
		tree.DeleteKey(10)
		tree.DeleteKey(11)
		assert.Equal(t, []uint64{20, 30, 80}, inorder(m, m.FirstNode(tree.Root()), nil), m.Name())
		tree.Init()
		assert.Nil(t, m.FirstNode(tree.Root()), m.Name())
		return true
	})
}
