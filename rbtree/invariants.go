package rbtree

import (
	"cmp"
	"fmt"

	"github.com/npillmayer/ordtrees/internal/arena"
)

// Check validates the structural invariants of the tree:
//
//   - the sentinel slot is untouched and the root is black,
//   - no red node has a red child,
//   - all paths to the sentinel carry the same number of black nodes,
//   - parent back-references match child links,
//   - keys are in search order and the key count is consistent.
func (t *Tree[K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariantViolation)
	}
	if t.nodes.Get(arena.Nil) != (node[K]{}) {
		return fmt.Errorf("%w: sentinel has been written", ErrInvariantViolation)
	}
	if t.root == arena.Nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree reports %d keys", ErrInvariantViolation, t.size)
		}
		return nil
	}
	if t.color(t.root) != Black {
		return fmt.Errorf("%w: root is red", ErrInvariantViolation)
	}
	if t.parent(t.root) != arena.Nil {
		return fmt.Errorf("%w: root has a parent", ErrInvariantViolation)
	}
	count, _, err := t.checkNode(t.root, nil, nil)
	if err != nil {
		tracer().Errorf("rbtree: %v", err)
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: counted %d keys, tree reports %d", ErrInvariantViolation, count, t.size)
	}
	return nil
}

// checkNode verifies the subtree at `at` and returns its key count and the
// number of black nodes on every path from `at` down to the sentinel, both
// ends included.
func (t *Tree[K]) checkNode(at arena.Index, lo, hi *K) (count int, blackHeight int, err error) {
	if at == arena.Nil {
		return 0, 1, nil
	}
	n := t.nodes.Get(at)
	if lo != nil && cmp.Compare(n.key, *lo) <= 0 {
		return 0, 0, fmt.Errorf("%w: key %v not greater than %v", ErrInvariantViolation, n.key, *lo)
	}
	if hi != nil && cmp.Compare(n.key, *hi) >= 0 {
		return 0, 0, fmt.Errorf("%w: key %v not less than %v", ErrInvariantViolation, n.key, *hi)
	}
	for _, child := range [2]arena.Index{n.left, n.right} {
		if child == arena.Nil {
			continue
		}
		if t.parent(child) != at {
			return 0, 0, fmt.Errorf("%w: child %v does not point back to parent %v",
				ErrInvariantViolation, t.nodes.At(child).key, n.key)
		}
		if n.color == Red && t.color(child) == Red {
			return 0, 0, fmt.Errorf("%w: red node %v has red child %v",
				ErrInvariantViolation, n.key, t.nodes.At(child).key)
		}
	}
	lc, lbh, err := t.checkNode(n.left, lo, &n.key)
	if err != nil {
		return 0, 0, err
	}
	rc, rbh, err := t.checkNode(n.right, &n.key, hi)
	if err != nil {
		return 0, 0, err
	}
	if lbh != rbh {
		return 0, 0, fmt.Errorf("%w: black heights %d and %d differ below %v",
			ErrInvariantViolation, lbh, rbh, n.key)
	}
	blackHeight = lbh
	if n.color == Black {
		blackHeight++
	}
	return lc + rc + 1, blackHeight, nil
}
