package avl

import (
	"cmp"
	"fmt"

	"github.com/npillmayer/ordtrees/internal/arena"
)

// Check validates the structural invariants of the tree: search order,
// stored heights, balance factors within [-1, 1] and the key count.
func (t *Tree[K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariantViolation)
	}
	if t.nodes.Get(arena.Nil) != (node[K]{}) {
		return fmt.Errorf("%w: nil slot has been written", ErrInvariantViolation)
	}
	count, _, err := t.checkNode(t.root, nil, nil)
	if err != nil {
		tracer().Errorf("avl: %v", err)
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: counted %d keys, tree reports %d", ErrInvariantViolation, count, t.size)
	}
	return nil
}

// checkNode verifies the subtree at `at`, whose keys must lie strictly
// between lo and hi (nil bounds are open).
func (t *Tree[K]) checkNode(at arena.Index, lo, hi *K) (count int, height int32, err error) {
	if at == arena.Nil {
		return 0, 0, nil
	}
	n := t.nodes.Get(at)
	if lo != nil && cmp.Compare(n.key, *lo) <= 0 {
		return 0, 0, fmt.Errorf("%w: key %v not greater than %v", ErrInvariantViolation, n.key, *lo)
	}
	if hi != nil && cmp.Compare(n.key, *hi) >= 0 {
		return 0, 0, fmt.Errorf("%w: key %v not less than %v", ErrInvariantViolation, n.key, *hi)
	}
	lc, lh, err := t.checkNode(n.left, lo, &n.key)
	if err != nil {
		return 0, 0, err
	}
	rc, rh, err := t.checkNode(n.right, &n.key, hi)
	if err != nil {
		return 0, 0, err
	}
	height = 1 + max(lh, rh)
	if n.height != height {
		return 0, 0, fmt.Errorf("%w: node %v stores height %d, actual %d",
			ErrInvariantViolation, n.key, n.height, height)
	}
	if b := lh - rh; b < -1 || b > 1 {
		return 0, 0, fmt.Errorf("%w: node %v has balance factor %d", ErrInvariantViolation, n.key, b)
	}
	return lc + rc + 1, height, nil
}
