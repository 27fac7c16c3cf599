package rbtree

import (
	"cmp"

	"github.com/npillmayer/ordtrees/internal/arena"
)

// Node is a read-only reference to a node of a Tree. It does not own the
// node and becomes meaningless once the tree is modified.
type Node[K cmp.Ordered] struct {
	tree *Tree[K]
	at   arena.Index
}

// Key returns the key stored at the node.
func (n Node[K]) Key() K {
	return n.tree.nodes.At(n.at).key
}

// Color returns the node's color.
func (n Node[K]) Color() Color {
	return n.tree.color(n.at)
}

// IsRed is a shortcut for n.Color() == Red.
func (n Node[K]) IsRed() bool {
	return n.Color() == Red
}

// Left returns the left child, if any.
func (n Node[K]) Left() (Node[K], bool) {
	return n.ref(n.tree.left(n.at))
}

// Right returns the right child, if any.
func (n Node[K]) Right() (Node[K], bool) {
	return n.ref(n.tree.right(n.at))
}

// Parent returns the parent node; the root has none.
func (n Node[K]) Parent() (Node[K], bool) {
	return n.ref(n.tree.parent(n.at))
}

func (n Node[K]) ref(at arena.Index) (Node[K], bool) {
	if at == arena.Nil {
		return Node[K]{}, false
	}
	return Node[K]{tree: n.tree, at: at}, true
}
