package plain

import (
	"math/rand"
	"sort"
	"testing"
	"unsafe"

	"github.com/npillmayer/treeharness/abi"
	"github.com/npillmayer/treeharness/layout"
)

func newArena(t *testing.T, n int) (*layout.Arena, *root) {
	table, err := abi.Resolve(Symbols())
	if err != nil {
		t.Fatal(err)
	}
	d, err := table.Descriptor()
	if err != nil {
		t.Fatal(err)
	}
	a, err := layout.NewArena(d, n)
	if err != nil {
		t.Fatal(err)
	}
	Init(unsafe.Pointer(a.Root()))
	return a, (*root)(unsafe.Pointer(a.Root()))
}

func walk(n *node, keys []uint64) []uint64 {
	if n == nil {
		return keys
	}
	keys = walk(n.left, keys)
	keys = append(keys, elementOf(n).key)
	return walk(n.right, keys)
}

func TestInsertDelete(t *testing.T) {
	a, r := newArena(t, 400)
	rootp := unsafe.Pointer(a.Root())
	rnd := rand.New(rand.NewSource(3))
	present := map[uint64]bool{}
	for i := 0; i < a.Len(); i++ {
		k := uint64(rnd.Intn(300))
		a.SetKey(i, k)
		Insert(rootp, unsafe.Pointer(a.Element(i)))
		present[k] = true
	}
	for i := 0; i < 200; i++ {
		k := uint64(rnd.Intn(320))
		Delete(rootp, k)
		delete(present, k)
	}
	want := make([]uint64, 0, len(present))
	for k := range present {
		want = append(want, k)
	}
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
	got := walk(r.first, nil)
	if len(got) != len(want) {
		t.Fatalf("expected %d keys, have %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("key #%d: expected %d, have %d", i, want[i], got[i])
		}
	}
}

func TestDuplicatesAreIgnored(t *testing.T) {
	a, r := newArena(t, 3)
	rootp := unsafe.Pointer(a.Root())
	for i := 0; i < 3; i++ {
		a.SetKey(i, 7)
		Insert(rootp, unsafe.Pointer(a.Element(i)))
	}
	if r.inserts != 1 {
		t.Errorf("expected a single linked element, have %d", r.inserts)
	}
	if r.first != &(*element)(unsafe.Pointer(a.Element(0))).node {
		t.Errorf("expected the first element to stay linked")
	}
}

func TestHeightBalanceIsUnbounded(t *testing.T) {
	a, r := newArena(t, 5)
	rootp := unsafe.Pointer(a.Root())
	for i := 0; i < 5; i++ {
		a.SetKey(i, uint64(i))
		Insert(rootp, unsafe.Pointer(a.Element(i)))
	}
	if b := GetBalance(unsafe.Pointer(r.first)); b != 4 {
		t.Errorf("expected balance 4 for a degenerate chain, have %d", b)
	}
}
