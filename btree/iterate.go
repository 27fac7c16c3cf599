package btree

import "iter"

// All returns the keys in ascending order. The sequence may be ranged over
// any number of times, but not while the tree is being modified.
func (t *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		t.ForEachKey(yield)
	}
}

// ForEachKey walks keys in-order: for every key index i of a node it visits
// child i before key i, and the last child after the final key.
//
// Iteration stops early if callback returns false.
func (t *Tree[K]) ForEachKey(fn func(key K) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	t.forEachKeyNode(t.root, fn)
}

func (t *Tree[K]) forEachKeyNode(n *node[K], fn func(key K) bool) bool {
	assert(n != nil, "forEachKeyNode called with nil node")
	for i, key := range n.keys {
		if !n.leaf && !t.forEachKeyNode(n.children[i], fn) {
			return false
		}
		if !fn(key) {
			return false
		}
	}
	if !n.leaf {
		return t.forEachKeyNode(n.children[len(n.keys)], fn)
	}
	return true
}
