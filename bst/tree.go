package bst

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/npillmayer/ordtrees/internal/arena"
)

type node[K cmp.Ordered] struct {
	key         K
	left, right arena.Index
}

// Tree is an unbalanced binary search tree holding distinct keys.
type Tree[K cmp.Ordered] struct {
	nodes *arena.Arena[node[K]]
	root  arena.Index
}

// New creates an empty tree.
func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{nodes: arena.New[node[K]](64)}
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	if t == nil {
		return 0
	}
	return t.nodes.Len()
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t == nil || t.root == arena.Nil
}

// Insert adds key at its search-tree position. It returns false if key was
// already present.
func (t *Tree[K]) Insert(key K) bool {
	parent := arena.Nil
	at := t.root
	var c int
	for at != arena.Nil {
		parent = at
		n := t.nodes.At(at)
		c = cmp.Compare(key, n.key)
		switch {
		case c < 0:
			at = n.left
		case c > 0:
			at = n.right
		default:
			return false
		}
	}
	at = t.nodes.Alloc(node[K]{key: key})
	switch {
	case parent == arena.Nil:
		t.root = at
	case c < 0:
		t.nodes.At(parent).left = at
	default:
		t.nodes.At(parent).right = at
	}
	return true
}

// Search looks up key and returns a reference to its node.
func (t *Tree[K]) Search(key K) (Node[K], bool) {
	if t == nil {
		return Node[K]{}, false
	}
	at := t.root
	for at != arena.Nil {
		n := t.nodes.At(at)
		switch c := cmp.Compare(key, n.key); {
		case c < 0:
			at = n.left
		case c > 0:
			at = n.right
		default:
			return Node[K]{tree: t, at: at}, true
		}
	}
	return Node[K]{}, false
}

// Contains reports whether key is in the tree.
func (t *Tree[K]) Contains(key K) bool {
	_, ok := t.Search(key)
	return ok
}

// Root returns a reference to the root node.
func (t *Tree[K]) Root() (Node[K], bool) {
	if t.IsEmpty() {
		return Node[K]{}, false
	}
	return Node[K]{tree: t, at: t.root}, true
}

// Height returns the number of levels of the tree, 0 for an empty tree.
// The walk is iterative, degenerate trees may be as deep as they are long.
func (t *Tree[K]) Height() int {
	if t.IsEmpty() {
		return 0
	}
	type level struct {
		at    arena.Index
		depth int
	}
	height := 0
	stack := []level{{t.root, 1}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		height = max(height, top.depth)
		n := t.nodes.At(top.at)
		for _, c := range [2]arena.Index{n.left, n.right} {
			if c != arena.Nil {
				stack = append(stack, level{c, top.depth + 1})
			}
		}
	}
	return height
}

// All returns the keys in ascending order.
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
	var stack []arena.Index
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

// Check validates the search order and that every allocated node is
// reachable from the root.
func (t *Tree[K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariantViolation)
	}
	var prev *K
	count := 0
	var err error
	t.ForEachKey(func(key K) bool {
		if prev != nil && cmp.Compare(*prev, key) >= 0 {
			err = fmt.Errorf("%w: %v precedes %v in-order", ErrInvariantViolation, *prev, key)
			return false
		}
		prev = &key
		count++
		return true
	})
	if err != nil {
		return err
	}
	if count != t.nodes.Len() {
		return fmt.Errorf("%w: %d of %d nodes reachable", ErrInvariantViolation, count, t.nodes.Len())
	}
	return nil
}

// Node is a read-only reference to a node of a Tree.
type Node[K cmp.Ordered] struct {
	tree *Tree[K]
	at   arena.Index
}

// Key returns the key stored at the node.
func (n Node[K]) Key() K {
	return n.tree.nodes.At(n.at).key
}

// Left returns the left child, if any.
func (n Node[K]) Left() (Node[K], bool) {
	return n.ref(n.tree.nodes.At(n.at).left)
}

// Right returns the right child, if any.
func (n Node[K]) Right() (Node[K], bool) {
	return n.ref(n.tree.nodes.At(n.at).right)
}

func (n Node[K]) ref(at arena.Index) (Node[K], bool) {
	if at == arena.Nil {
		return Node[K]{}, false
	}
	return Node[K]{tree: n.tree, at: at}, true
}
