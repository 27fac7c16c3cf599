package avl

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

// Height returns the height of the subtree rooted at the node.
func (n Node[K]) Height() int {
	return int(n.tree.height(n.at))
}

// Balance returns the balance factor height(left) − height(right).
func (n Node[K]) Balance() int {
	return n.tree.balance(n.at)
}

// Left returns the left child, if any.
func (n Node[K]) Left() (Node[K], bool) {
	return n.child(n.tree.nodes.At(n.at).left)
}

// Right returns the right child, if any.
func (n Node[K]) Right() (Node[K], bool) {
	return n.child(n.tree.nodes.At(n.at).right)
}

func (n Node[K]) child(at arena.Index) (Node[K], bool) {
	if at == arena.Nil {
		return Node[K]{}, false
	}
	return Node[K]{tree: n.tree, at: at}, true
}
