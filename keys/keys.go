/*
Package keys prepares key sequences for tree workloads.

Sequences exist either as plain slices or as the keys of an arena's
elements. Shuffling is an unbiased Fisher–Yates shuffle driven by a caller
supplied random source, so runs are reproducible from a seed.
*/
package keys

import (
	"math/rand"
	"slices"
)

// FillAscending returns the keys 0 … n-1 in ascending order.
func FillAscending(n int) []uint64 {
	keys := make([]uint64, n)
	for i := range keys {
		keys[i] = uint64(i)
	}
	return keys
}

// Shuffle permutes keys in place. Positions are visited from the highest
// index down; position i is swapped with a position drawn uniformly from
// [0, i].
func Shuffle(keys []uint64, rnd *rand.Rand) {
	for i := len(keys) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		tmp := keys[i]
		keys[i] = keys[j]
		keys[j] = tmp
	}
}

// SameMultiset reports whether a and b hold the same keys with the same
// multiplicities.
func SameMultiset(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	x, y := slices.Clone(a), slices.Clone(b)
	slices.Sort(x)
	slices.Sort(y)
	return slices.Equal(x, y)
}
