package btree

import (
	"cmp"
	"fmt"
)

// Check validates structural tree invariants: node occupancy, child counts,
// key order and separation, uniform leaf depth, height and key count.
func (t *Tree[K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariantViolation)
	}
	if t.root == nil {
		if t.height != 0 || t.size != 0 {
			return fmt.Errorf("%w: empty tree must have height=0 and size=0", ErrInvariantViolation)
		}
		return nil
	}
	if t.height <= 0 {
		return fmt.Errorf("%w: non-empty tree must have height > 0", ErrInvariantViolation)
	}
	keys, height, err := t.checkNode(t.root, true, nil, nil)
	if err != nil {
		tracer().Errorf("btree: %v", err)
		return err
	}
	if height != t.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrInvariantViolation, height, t.height)
	}
	if keys != t.size {
		return fmt.Errorf("%w: counted %d keys, tree reports %d", ErrInvariantViolation, keys, t.size)
	}
	return nil
}

// checkNode verifies the subtree at n, whose keys must lie strictly between
// lo and hi (nil bounds are open).
func (t *Tree[K]) checkNode(n *node[K], isRoot bool, lo, hi *K) (keys int, height int, err error) {
	if n == nil {
		return 0, 0, fmt.Errorf("%w: nil node", ErrInvariantViolation)
	}
	if len(n.keys) > t.cfg.maxKeys() {
		return 0, 0, fmt.Errorf("%w: key count %d exceeds %d",
			ErrInvariantViolation, len(n.keys), t.cfg.maxKeys())
	}
	if isRoot && len(n.keys) == 0 {
		return 0, 0, fmt.Errorf("%w: root holds no keys", ErrInvariantViolation)
	}
	if !isRoot && len(n.keys) < t.cfg.minKeys() {
		return 0, 0, fmt.Errorf("%w: key count %d below minimum %d",
			ErrInvariantViolation, len(n.keys), t.cfg.minKeys())
	}
	for i, key := range n.keys {
		if i > 0 && cmp.Compare(n.keys[i-1], key) >= 0 {
			return 0, 0, fmt.Errorf("%w: keys %v not strictly increasing", ErrInvariantViolation, n.keys)
		}
		if lo != nil && cmp.Compare(key, *lo) <= 0 || hi != nil && cmp.Compare(key, *hi) >= 0 {
			return 0, 0, fmt.Errorf("%w: key %v outside of its parent's separators", ErrInvariantViolation, key)
		}
	}
	if n.leaf {
		if len(n.children) != 0 {
			return 0, 0, fmt.Errorf("%w: leaf has %d children", ErrInvariantViolation, len(n.children))
		}
		return len(n.keys), 1, nil
	}
	if len(n.children) != len(n.keys)+1 {
		return 0, 0, fmt.Errorf("%w: internal node has %d keys but %d children",
			ErrInvariantViolation, len(n.keys), len(n.children))
	}
	totalKeys := len(n.keys)
	var childHeight int
	for i, child := range n.children {
		clo, chi := lo, hi
		if i > 0 {
			clo = &n.keys[i-1]
		}
		if i < len(n.keys) {
			chi = &n.keys[i]
		}
		cKeys, cHeight, cErr := t.checkNode(child, false, clo, chi)
		if cErr != nil {
			return 0, 0, cErr
		}
		totalKeys += cKeys
		if i == 0 {
			childHeight = cHeight
		} else if cHeight != childHeight {
			return 0, 0, fmt.Errorf("%w: leaves at different depths", ErrInvariantViolation)
		}
	}
	return totalKeys, childHeight + 1, nil
}
