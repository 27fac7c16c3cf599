package btree

import (
	"cmp"
)

// Tree is a B-tree holding distinct keys of type K.
// The zero value is not usable; create trees with New.
type Tree[K cmp.Ordered] struct {
	cfg    Config
	root   *node[K]
	height int // 0 means empty tree
	size   int
}

// New creates an empty tree with validated configuration.
func New[K cmp.Ordered](cfg Config) (*Tree[K], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[K]{cfg: cfg}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K]) Config() Config {
	return t.cfg
}

// MinDegree returns the minimum degree the tree has been created with.
func (t *Tree[K]) MinDegree() int {
	return t.cfg.MinDegree
}

// IsEmpty reports whether the tree has no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Height returns the tree height, where 0 means empty and 1 means a leaf root.
func (t *Tree[K]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Root returns a view of the root node.
func (t *Tree[K]) Root() (Node[K], bool) {
	if t.IsEmpty() {
		return Node[K]{}, false
	}
	return Node[K]{n: t.root}, true
}

// Insert adds key to the tree. It returns false if key was already present,
// in which case the tree is left untouched.
func (t *Tree[K]) Insert(key K) bool {
	if t.root == nil {
		t.root = t.makeLeaf(key)
		t.height, t.size = 1, 1
		return true
	}
	if t.Contains(key) {
		return false
	}
	if t.isFull(t.root) {
		t.root = t.makeInternal(nil, t.root)
		t.splitChild(t.root, 0)
		t.height++
		tracer().Debugf("btree: root split, root=%v height=%d", t.root.keys, t.height)
	}
	t.insertNonFull(t.root, key)
	t.size++
	return true
}
