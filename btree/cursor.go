package btree

import (
	"cmp"
	"iter"
	"slices"
)

// Cursor walks the keys of a tree in ascending order from a seek position.
//
// A cursor is invalidated by inserting into its tree; it has to be positioned
// again with Seek or First.
type Cursor[K cmp.Ordered] struct {
	tree *Tree[K]
	path []cursorFrame[K] // root first
}

// cursorFrame points at the next key to visit within n. For internal nodes,
// children[index] has already been visited.
type cursorFrame[K cmp.Ordered] struct {
	n     *node[K]
	index int
}

// NewCursor creates an unpositioned cursor for a tree.
func NewCursor[K cmp.Ordered](tree *Tree[K]) (*Cursor[K], error) {
	if tree == nil {
		return nil, ErrNilTree
	}
	return &Cursor[K]{tree: tree}, nil
}

// Seek positions the cursor at the smallest key greater than or equal to
// target and returns it. It returns false if there is no such key.
func (c *Cursor[K]) Seek(target K) (K, bool) {
	c.path = c.path[:0]
	n := c.tree.root
	for n != nil {
		i, found := slices.BinarySearch(n.keys, target)
		c.path = append(c.path, cursorFrame[K]{n: n, index: i})
		if found || n.leaf {
			break
		}
		n = n.children[i]
	}
	return c.Key()
}

// First positions the cursor at the smallest key of the tree.
func (c *Cursor[K]) First() (K, bool) {
	c.path = c.path[:0]
	if c.tree.root != nil {
		c.descendLeftmost(c.tree.root)
	}
	return c.Key()
}

// Key returns the key at the cursor position, or false if the cursor is
// exhausted or has not been positioned.
func (c *Cursor[K]) Key() (K, bool) {
	for len(c.path) > 0 {
		top := c.path[len(c.path)-1]
		if top.index < len(top.n.keys) {
			return top.n.keys[top.index], true
		}
		c.path = c.path[:len(c.path)-1]
	}
	var zero K
	return zero, false
}

// Next advances the cursor and returns the key it then points to.
func (c *Cursor[K]) Next() (K, bool) {
	if _, ok := c.Key(); !ok {
		var zero K
		return zero, false
	}
	top := &c.path[len(c.path)-1]
	top.index++
	if !top.n.leaf {
		c.descendLeftmost(top.n.children[top.index])
	}
	return c.Key()
}

func (c *Cursor[K]) descendLeftmost(n *node[K]) {
	for {
		c.path = append(c.path, cursorFrame[K]{n: n})
		if n.leaf {
			return
		}
		n = n.children[0]
	}
}

// Ascend returns the keys greater than or equal to from, in ascending order.
func (t *Tree[K]) Ascend(from K) iter.Seq[K] {
	return func(yield func(K) bool) {
		if t == nil {
			return
		}
		c := &Cursor[K]{tree: t}
		for key, ok := c.Seek(from); ok; key, ok = c.Next() {
			if !yield(key) {
				return
			}
		}
	}
}
