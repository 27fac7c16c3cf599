package btree

import (
	"cmp"
	"slices"
)

// Ref references a key slot inside a tree node. It does not own the node and
// becomes meaningless once the tree is modified.
type Ref[K cmp.Ordered] struct {
	n     *node[K]
	index int
}

// Key returns the referenced key.
func (r Ref[K]) Key() K {
	return r.n.keys[r.index]
}

// Index returns the position of the key within its node.
func (r Ref[K]) Index() int {
	return r.index
}

// Node returns a view of the node holding the key.
func (r Ref[K]) Node() Node[K] {
	return Node[K]{n: r.n}
}

// Search looks up key and returns a reference to its slot.
func (t *Tree[K]) Search(key K) (Ref[K], bool) {
	if t.IsEmpty() {
		return Ref[K]{}, false
	}
	n := t.root
	for {
		i, found := slices.BinarySearch(n.keys, key)
		if found {
			return Ref[K]{n: n, index: i}, true
		}
		if n.leaf {
			return Ref[K]{}, false
		}
		n = n.children[i]
	}
}

// Contains reports whether key is in the tree.
func (t *Tree[K]) Contains(key K) bool {
	_, ok := t.Search(key)
	return ok
}

// Min returns the smallest key.
func (t *Tree[K]) Min() (K, bool) {
	var zero K
	if t.IsEmpty() {
		return zero, false
	}
	n := t.root
	for !n.leaf {
		n = n.children[0]
	}
	return n.keys[0], true
}

// Max returns the largest key.
func (t *Tree[K]) Max() (K, bool) {
	var zero K
	if t.IsEmpty() {
		return zero, false
	}
	n := t.root
	for !n.leaf {
		n = n.children[len(n.children)-1]
	}
	return n.keys[len(n.keys)-1], true
}
