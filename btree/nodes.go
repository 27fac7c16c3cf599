package btree

import "cmp"

// node is a B-tree node. A leaf has no children; an internal node has
// exactly len(keys)+1 children, where children[i] holds the keys between
// keys[i-1] and keys[i].
type node[K cmp.Ordered] struct {
	keys     []K
	children []*node[K]
	leaf     bool
}

// Node is a read-only view of a tree node, meant for inspection and
// visualisation. It becomes meaningless once the tree is modified.
type Node[K cmp.Ordered] struct {
	n *node[K]
}

// Keys returns a copy of the node's keys.
func (v Node[K]) Keys() []K {
	return append([]K(nil), v.n.keys...)
}

// IsLeaf reports whether the node is a leaf.
func (v Node[K]) IsLeaf() bool {
	return v.n.leaf
}

// Children returns views of the node's children, none for a leaf.
func (v Node[K]) Children() []Node[K] {
	if v.n.leaf {
		return nil
	}
	children := make([]Node[K], len(v.n.children))
	for i, c := range v.n.children {
		children[i] = Node[K]{n: c}
	}
	return children
}
