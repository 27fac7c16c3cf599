package avl

import (
	"cmp"

	"github.com/npillmayer/ordtrees/internal/arena"
)

type node[K cmp.Ordered] struct {
	key         K
	left, right arena.Index
	height      int32 // 1 for a leaf; the empty subtree has height 0
}

// Tree is an AVL tree holding distinct keys of type K.
//
// The zero value is not usable; create trees with New.
type Tree[K cmp.Ordered] struct {
	nodes *arena.Arena[node[K]]
	root  arena.Index
	size  int
}

// New creates an empty AVL tree.
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

// Height returns the number of levels of the tree, 0 for an empty tree.
func (t *Tree[K]) Height() int {
	if t == nil {
		return 0
	}
	return int(t.height(t.root))
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
	root, inserted := t.insert(t.root, key)
	if !inserted {
		return false
	}
	if root != t.root && t.root != arena.Nil {
		tracer().Debugf("avl: new root %v", t.nodes.At(root).key)
	}
	t.root = root
	t.size++
	return true
}

// insert places key into the subtree at `at` and returns the (possibly new)
// subtree root. Callers must store the result in the parent link.
func (t *Tree[K]) insert(at arena.Index, key K) (arena.Index, bool) {
	if at == arena.Nil {
		return t.nodes.Alloc(node[K]{key: key, height: 1}), true
	}
	n := t.nodes.Get(at)
	var child arena.Index
	var inserted bool
	switch c := cmp.Compare(key, n.key); {
	case c < 0:
		child, inserted = t.insert(n.left, key)
		t.nodes.At(at).left = child
	case c > 0:
		child, inserted = t.insert(n.right, key)
		t.nodes.At(at).right = child
	default:
		return at, false
	}
	if !inserted {
		return at, false
	}
	t.updateHeight(at)
	return t.rebalance(at, key), true
}

// rebalance repairs the node at `at` after key has been inserted below it.
// The rotation case is selected by the sign of the balance factor and by the
// position of key relative to the heavy child's key.
func (t *Tree[K]) rebalance(at arena.Index, key K) arena.Index {
	n := t.nodes.Get(at)
	balance := t.balance(at)
	switch {
	case balance > 1 && cmp.Less(key, t.nodes.At(n.left).key):
		return t.rightRotate(at)
	case balance < -1 && cmp.Less(t.nodes.At(n.right).key, key):
		return t.leftRotate(at)
	case balance > 1 && cmp.Less(t.nodes.At(n.left).key, key):
		t.nodes.At(at).left = t.leftRotate(n.left)
		return t.rightRotate(at)
	case balance < -1 && cmp.Less(key, t.nodes.At(n.right).key):
		t.nodes.At(at).right = t.rightRotate(n.right)
		return t.leftRotate(at)
	}
	return at
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

// Min returns the smallest key.
func (t *Tree[K]) Min() (K, bool) {
	var zero K
	if t.IsEmpty() {
		return zero, false
	}
	at := t.root
	for t.nodes.At(at).left != arena.Nil {
		at = t.nodes.At(at).left
	}
	return t.nodes.At(at).key, true
}

// Max returns the largest key.
func (t *Tree[K]) Max() (K, bool) {
	var zero K
	if t.IsEmpty() {
		return zero, false
	}
	at := t.root
	for t.nodes.At(at).right != arena.Nil {
		at = t.nodes.At(at).right
	}
	return t.nodes.At(at).key, true
}
