package keys

import (
	"fmt"
	"math/rand"

	"github.com/npillmayer/treeharness"
	"github.com/npillmayer/treeharness/layout"
)

func checkCount(a *layout.Arena, n int) error {
	if n < 0 || n > a.Len() {
		return fmt.Errorf("%w: %d keys for an arena of %d elements",
			treeharness.ErrInvalidConfig, n, a.Len())
	}
	return nil
}

// FillArena sets the key of element i to i for the first n elements.
func FillArena(a *layout.Arena, n int) error {
	if err := checkCount(a, n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		a.SetKey(i, uint64(i))
	}
	return nil
}

// ShuffleArena permutes the keys of the first n elements, the same way
// Shuffle does for slices.
func ShuffleArena(a *layout.Arena, n int, rnd *rand.Rand) error {
	if err := checkCount(a, n); err != nil {
		return err
	}
	for i := n - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		tmp := a.Key(i)
		a.SetKey(i, a.Key(j))
		a.SetKey(j, tmp)
	}
	return nil
}

// CopyKeys copies the keys of the first n elements of src to the elements
// with the same index in dst. The arenas may belong to different modules.
func CopyKeys(dst, src *layout.Arena, n int) error {
	if err := checkCount(dst, n); err != nil {
		return err
	}
	if err := checkCount(src, n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		dst.SetKey(i, src.Key(i))
	}
	return nil
}

// AssignKeys sets the key of element i to keys[i] for the first n elements.
func AssignKeys(a *layout.Arena, keys []uint64, n int) error {
	if err := checkCount(a, n); err != nil {
		return err
	}
	if n > len(keys) {
		return fmt.Errorf("%w: %d keys requested, %d supplied",
			treeharness.ErrInvalidConfig, n, len(keys))
	}
	for i := 0; i < n; i++ {
		a.SetKey(i, keys[i])
	}
	return nil
}

// ArenaKeys returns the keys of the first n elements.
func ArenaKeys(a *layout.Arena, n int) ([]uint64, error) {
	if err := checkCount(a, n); err != nil {
		return nil, err
	}
	keys := make([]uint64, n)
	for i := range keys {
		keys[i] = a.Key(i)
	}
	return keys, nil
}
