package rbtree

import (
	"cmp"

	"github.com/npillmayer/ordtrees/internal/arena"
)

type node[K cmp.Ordered] struct {
	key                 K
	left, right, parent arena.Index
	color               Color
}

// Tree is a red-black tree holding distinct keys of type K.
//
// The zero value is not usable; create trees with New.
type Tree[K cmp.Ordered] struct {
	nodes *arena.Arena[node[K]]
	root  arena.Index
	size  int
}

// New creates an empty red-black tree.
func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{nodes: arena.New[node[K]](64)}
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t == nil || t.root == arena.Nil
}

// Root returns a reference to the root node.
func (t *Tree[K]) Root() (Node[K], bool) {
	if t.IsEmpty() {
		return Node[K]{}, false
	}
	return Node[K]{tree: t, at: t.root}, true
}

// Insert adds key to the tree. It returns false if key was already present,
// in which case the tree is left untouched.
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
	z := t.nodes.Alloc(node[K]{key: key, parent: parent, color: Red})
	switch {
	case parent == arena.Nil:
		t.root = z
	case c < 0:
		t.nodes.At(parent).left = z
	default:
		t.nodes.At(parent).right = z
	}
	t.size++
	t.insertFix(z)
	return true
}

// insertFix restores the coloring invariants after z has been linked in as a
// red node. After a recolor-only step the only possible red-red violation is
// at the grandparent, which becomes the new cursor; after a rotation the
// violation is resolved.
func (t *Tree[K]) insertFix(z arena.Index) {
	for z != t.root && t.color(t.parent(z)) == Red {
		p := t.parent(z)
		g := t.parent(p) // p is red, hence not the root
		if p == t.left(g) {
			u := t.right(g)
			if t.color(u) == Red {
				t.setColor(p, Black)
				t.setColor(u, Black)
				t.setColor(g, Red)
				z = g
				continue
			}
			if z == t.right(p) { // inner grandchild
				z = p
				t.leftRotate(z)
				p = t.parent(z)
			}
			t.setColor(p, Black)
			t.setColor(g, Red)
			t.rightRotate(g)
		} else {
			u := t.left(g)
			if t.color(u) == Red {
				t.setColor(p, Black)
				t.setColor(u, Black)
				t.setColor(g, Red)
				z = g
				continue
			}
			if z == t.left(p) { // inner grandchild
				z = p
				t.rightRotate(z)
				p = t.parent(z)
			}
			t.setColor(p, Black)
			t.setColor(g, Red)
			t.leftRotate(g)
		}
	}
	t.setColor(t.root, Black)
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

// Height returns the number of levels of the tree, 0 for an empty tree.
func (t *Tree[K]) Height() int {
	if t == nil {
		return 0
	}
	return t.subtreeHeight(t.root)
}

func (t *Tree[K]) subtreeHeight(at arena.Index) int {
	if at == arena.Nil {
		return 0
	}
	n := t.nodes.At(at)
	return 1 + max(t.subtreeHeight(n.left), t.subtreeHeight(n.right))
}

// BlackHeight returns the number of black nodes on any path from the root
// down to the sentinel, counting the sentinel but not the root.
// It is 0 for an empty tree.
func (t *Tree[K]) BlackHeight() int {
	if t.IsEmpty() {
		return 0
	}
	bh := 1 // sentinel
	for at := t.left(t.root); at != arena.Nil; at = t.left(at) {
		if t.color(at) == Black {
			bh++
		}
	}
	return bh
}
