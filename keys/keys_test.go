package keys

import (
	"math/rand"
	"testing"
	"unsafe"

	"github.com/npillmayer/treeharness"
	"github.com/npillmayer/treeharness/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type node struct {
	left, right unsafe.Pointer
}

type element struct {
	node node
	pad  uint64
	key  uint64
}

type other struct {
	key  uint64
	node node
}

func arena(t *testing.T, n int, second bool) *layout.Arena {
	d := &layout.Descriptor{
		RootSize:       unsafe.Sizeof(unsafe.Pointer(nil)),
		ElementSize:    unsafe.Sizeof(element{}),
		RootNodeOffset: 0,
		LeftOffset:     unsafe.Offsetof(node{}.left),
		RightOffset:    unsafe.Offsetof(node{}.right),
		NodeOffset:     unsafe.Offsetof(element{}.node),
		KeyOffset:      unsafe.Offsetof(element{}.key),
	}
	if second {
		d.ElementSize = unsafe.Sizeof(other{})
		d.NodeOffset = unsafe.Offsetof(other{}.node)
		d.KeyOffset = unsafe.Offsetof(other{}.key)
	}
	a, err := layout.NewArena(d, n)
	require.NoError(t, err)
	return a
}

func TestShuffleIsPermutation(t *testing.T) {
	rnd := rand.New(rand.NewSource(1234))
	for _, n := range []int{0, 1, 2, 10, 1000} {
		keys := FillAscending(n)
		Shuffle(keys, rnd)
		assert.True(t, SameMultiset(FillAscending(n), keys), "n=%d", n)
	}
	one := FillAscending(1)
	Shuffle(one, rnd)
	assert.Equal(t, []uint64{0}, one)
}

func TestShuffleMovesKeys(t *testing.T) {
	keys := FillAscending(100)
	Shuffle(keys, rand.New(rand.NewSource(5)))
	assert.NotEqual(t, FillAscending(100), keys)
}

func TestShuffleIsUniform(t *testing.T) {
	// each of the 6 permutations of 3 keys should appear about equally often
	const rounds = 60000
	rnd := rand.New(rand.NewSource(77))
	seen := map[[3]uint64]int{}
	for r := 0; r < rounds; r++ {
		k := FillAscending(3)
		Shuffle(k, rnd)
		seen[[3]uint64{k[0], k[1], k[2]}]++
	}
	require.Len(t, seen, 6)
	for perm, count := range seen {
		assert.InDelta(t, rounds/6, count, rounds/60, "permutation %v", perm)
	}
}

func TestSameMultiset(t *testing.T) {
	assert.True(t, SameMultiset([]uint64{3, 1, 1}, []uint64{1, 3, 1}))
	assert.False(t, SameMultiset([]uint64{3, 1, 1}, []uint64{1, 3, 3}))
	assert.False(t, SameMultiset([]uint64{1}, nil))
	assert.True(t, SameMultiset(nil, []uint64{}))
}

func TestAssignCopyRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 17} {
		a, b := arena(t, n, false), arena(t, n, true)
		keys := FillAscending(n)
		Shuffle(keys, rand.New(rand.NewSource(int64(n))))
		require.NoError(t, AssignKeys(a, keys, n))
		require.NoError(t, CopyKeys(b, a, n))
		got, err := ArenaKeys(b, n)
		require.NoError(t, err)
		assert.Equal(t, keys, got, "n=%d", n)
	}
}

func TestArenaFillAndShuffle(t *testing.T) {
	a := arena(t, 50, true)
	require.NoError(t, FillArena(a, 50))
	require.NoError(t, ShuffleArena(a, 50, rand.New(rand.NewSource(9))))
	got, err := ArenaKeys(a, 50)
	require.NoError(t, err)
	assert.True(t, SameMultiset(FillAscending(50), got))
}

func TestArenaBounds(t *testing.T) {
	a := arena(t, 4, false)
	assert.ErrorIs(t, FillArena(a, 5), treeharness.ErrInvalidConfig)
	assert.ErrorIs(t, AssignKeys(a, []uint64{1, 2}, 3), treeharness.ErrInvalidConfig)
	assert.ErrorIs(t, CopyKeys(a, arena(t, 2, true), 3), treeharness.ErrInvalidConfig)
	_, err := ArenaKeys(a, -1)
	assert.ErrorIs(t, err, treeharness.ErrInvalidConfig)
}
