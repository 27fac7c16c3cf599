package rbtree

import (
	"iter"

	"github.com/npillmayer/ordtrees/internal/arena"
)

// All returns the keys in ascending order. The sequence may be ranged over
// any number of times, but not while the tree is being modified.
func (t *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		t.ForEachKey(yield)
	}
}

// ForEachKey walks keys in-order, following parent links instead of keeping
// a stack.
//
// Iteration stops early if callback returns false.
func (t *Tree[K]) ForEachKey(fn func(key K) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	at := t.leftmost(t.root)
	for at != arena.Nil {
		if !fn(t.nodes.At(at).key) {
			return
		}
		at = t.successor(at)
	}
}

func (t *Tree[K]) leftmost(at arena.Index) arena.Index {
	for t.left(at) != arena.Nil {
		at = t.left(at)
	}
	return at
}

func (t *Tree[K]) successor(at arena.Index) arena.Index {
	if r := t.right(at); r != arena.Nil {
		return t.leftmost(r)
	}
	p := t.parent(at)
	for p != arena.Nil && at == t.right(p) {
		at, p = p, t.parent(p)
	}
	return p
}

// Min returns the smallest key.
func (t *Tree[K]) Min() (K, bool) {
	var zero K
	if t.IsEmpty() {
		return zero, false
	}
	return t.nodes.At(t.leftmost(t.root)).key, true
}

// Max returns the largest key.
func (t *Tree[K]) Max() (K, bool) {
	var zero K
	if t.IsEmpty() {
		return zero, false
	}
	at := t.root
	for t.right(at) != arena.Nil {
		at = t.right(at)
	}
	return t.nodes.At(at).key, true
}
