package avl

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

// ForEachKey walks keys in-order.
//
// Iteration stops early if callback returns false.
func (t *Tree[K]) ForEachKey(fn func(key K) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	stack := make([]arena.Index, 0, t.Height())
	at := t.root
	for at != arena.Nil || len(stack) > 0 {
		for at != arena.Nil {
			stack = append(stack, at)
			at = t.nodes.At(at).left
		}
		at = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.nodes.At(at)
		if !fn(n.key) {
			return
		}
		at = n.right
	}
}
