package rbtree

import "github.com/npillmayer/ordtrees/internal/arena"

func (t *Tree[K]) color(at arena.Index) Color        { return t.nodes.At(at).color }
func (t *Tree[K]) parent(at arena.Index) arena.Index { return t.nodes.At(at).parent }
func (t *Tree[K]) left(at arena.Index) arena.Index   { return t.nodes.At(at).left }
func (t *Tree[K]) right(at arena.Index) arena.Index  { return t.nodes.At(at).right }

func (t *Tree[K]) setColor(at arena.Index, c Color) {
	assert(at != arena.Nil, "attempt to color the sentinel")
	t.nodes.At(at).color = c
}

// replaceChild makes y take x's place below x's parent, or at the root.
func (t *Tree[K]) replaceChild(x, y arena.Index) {
	xp := t.parent(x)
	t.nodes.At(y).parent = xp
	switch {
	case xp == arena.Nil:
		t.root = y
		tracer().Debugf("rbtree: new root %v", t.nodes.At(y).key)
	case x == t.left(xp):
		t.nodes.At(xp).left = y
	default:
		t.nodes.At(xp).right = y
	}
}

// leftRotate promotes the right child of x.
//
//	  x                y
//	 / \              / \
//	a   y     →      x   c
//	   / \          / \
//	  b   c        a   b
func (t *Tree[K]) leftRotate(x arena.Index) {
	y := t.right(x)
	assert(x != arena.Nil && y != arena.Nil, "left rotation without right child")
	b := t.left(y)
	t.nodes.At(x).right = b
	if b != arena.Nil {
		t.nodes.At(b).parent = x
	}
	t.replaceChild(x, y)
	t.nodes.At(y).left = x
	t.nodes.At(x).parent = y
}

// rightRotate promotes the left child of y.
//
//	    y            x
//	   / \          / \
//	  x   c   →    a   y
//	 / \              / \
//	a   b            b   c
func (t *Tree[K]) rightRotate(y arena.Index) {
	x := t.left(y)
	assert(y != arena.Nil && x != arena.Nil, "right rotation without left child")
	b := t.right(x)
	t.nodes.At(y).left = b
	if b != arena.Nil {
		t.nodes.At(b).parent = y
	}
	t.replaceChild(y, x)
	t.nodes.At(x).right = y
	t.nodes.At(y).parent = x
}
