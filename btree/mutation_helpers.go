package btree

import (
	"cmp"
	"fmt"
	"slices"
)

// insertAt inserts values into a slice at idx, growing it in place if
// capacity permits.
func insertAt[T any](src []T, idx int, values ...T) []T {
	assert(idx >= 0 && idx <= len(src), "insertAt index out of range")
	return slices.Insert(src, idx, values...)
}

// splitChild splits the full child parent.children[i] into two nodes of t−1
// keys each. The median key moves up into parent at position i and the new
// right sibling becomes parent.children[i+1]. For an internal child the first
// t children stay, the remaining t move to the sibling.
//
// Splitting a child that is not full is a programming error and panics with
// ErrInvariantViolation before anything is modified.
func (t *Tree[K]) splitChild(parent *node[K], i int) {
	assert(parent != nil && !parent.leaf, "splitChild called with leaf parent")
	assert(i >= 0 && i < len(parent.children), "splitChild index out of range")
	assert(!t.isFull(parent), "splitChild called with full parent")
	child := parent.children[i]
	deg := t.cfg.MinDegree
	assert(t.isFull(child), fmt.Sprintf("splitChild on non-full child (%d keys, need %d)",
		len(child.keys), t.cfg.maxKeys()))
	var sibling *node[K]
	if child.leaf {
		sibling = t.makeLeaf(child.keys[deg:]...)
	} else {
		sibling = t.makeInternal(child.keys[deg:], child.children[deg:]...)
		clear(child.children[deg:])
		child.children = child.children[:deg]
	}
	median := child.keys[deg-1]
	clear(child.keys[deg-1:])
	child.keys = child.keys[:deg-1]
	parent.keys = insertAt(parent.keys, i, median)
	parent.children = insertAt(parent.children, i+1, sibling)
}

// insertNonFull inserts key below n, which must not be full. Full children
// are split before the descent enters them.
func (t *Tree[K]) insertNonFull(n *node[K], key K) {
	assert(!t.isFull(n), "insertNonFull called with full node")
	i, found := slices.BinarySearch(n.keys, key)
	assert(!found, "insertNonFull reached an existing key")
	if n.leaf {
		n.keys = insertAt(n.keys, i, key)
		return
	}
	if t.isFull(n.children[i]) {
		t.splitChild(n, i)
		if cmp.Less(n.keys[i], key) {
			i++
		}
	}
	t.insertNonFull(n.children[i], key)
}
