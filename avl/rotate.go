package avl

import "github.com/npillmayer/ordtrees/internal/arena"

func (t *Tree[K]) height(at arena.Index) int32 {
	if at == arena.Nil {
		return 0
	}
	return t.nodes.At(at).height
}

// balance returns height(left) − height(right) for the node at `at`.
func (t *Tree[K]) balance(at arena.Index) int {
	if at == arena.Nil {
		return 0
	}
	n := t.nodes.At(at)
	return int(t.height(n.left) - t.height(n.right))
}

func (t *Tree[K]) updateHeight(at arena.Index) {
	n := t.nodes.At(at)
	n.height = 1 + max(t.height(n.left), t.height(n.right))
}

// leftRotate promotes the right child of x and returns it as the new
// subtree root.
//
//	  x                y
//	 / \              / \
//	a   y     →      x   c
//	   / \          / \
//	  b   c        a   b
func (t *Tree[K]) leftRotate(x arena.Index) arena.Index {
	y := t.nodes.At(x).right
	assert(y != arena.Nil, "left rotation without right child")
	b := t.nodes.At(y).left
	t.nodes.At(y).left = x
	t.nodes.At(x).right = b
	t.updateHeight(x)
	t.updateHeight(y)
	return y
}

// rightRotate promotes the left child of y and returns it as the new
// subtree root.
//
//	    y            x
//	   / \          / \
//	  x   c   →    a   y
//	 / \              / \
//	a   b            b   c
func (t *Tree[K]) rightRotate(y arena.Index) arena.Index {
	x := t.nodes.At(y).left
	assert(x != arena.Nil, "right rotation without left child")
	b := t.nodes.At(x).right
	t.nodes.At(x).right = y
	t.nodes.At(y).left = b
	t.updateHeight(y)
	t.updateHeight(x)
	return x
}
