package btree

// makeLeaf materializes a new leaf with capacity for a full node.
func (t *Tree[K]) makeLeaf(keys ...K) *node[K] {
	assert(len(keys) <= t.cfg.maxKeys(), "makeLeaf exceeds node capacity")
	leaf := &node[K]{
		keys: make([]K, len(keys), t.cfg.maxKeys()),
		leaf: true,
	}
	copy(leaf.keys, keys)
	return leaf
}

// makeInternal materializes a new internal node holding keys and children.
func (t *Tree[K]) makeInternal(keys []K, children ...*node[K]) *node[K] {
	assert(len(keys) <= t.cfg.maxKeys(), "makeInternal exceeds node capacity")
	assert(len(children) == len(keys)+1, "makeInternal needs one child more than keys")
	inner := &node[K]{
		keys:     make([]K, len(keys), t.cfg.maxKeys()),
		children: make([]*node[K], len(children), t.cfg.maxKeys()+1),
	}
	copy(inner.keys, keys)
	copy(inner.children, children)
	return inner
}

func (t *Tree[K]) isFull(n *node[K]) bool {
	return len(n.keys) == t.cfg.maxKeys()
}
