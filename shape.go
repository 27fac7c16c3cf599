package ordtrees

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/npillmayer/ordtrees/avl"
	"github.com/npillmayer/ordtrees/bst"
	"github.com/npillmayer/ordtrees/btree"
	"github.com/npillmayer/ordtrees/rbtree"
	"github.com/npillmayer/ordtrees/treeviz"
)

// Shape converts an engine into a display tree. It returns nil for an empty
// engine or for an engine implementation not provided by this module.
//
// AVL nodes are labeled with their balance factor, red-black nodes carry
// their color as class and B-tree nodes list all of their keys.
func Shape[K cmp.Ordered](engine Engine[K]) *treeviz.Node {
	switch tree := engine.(type) {
	case *bst.Tree[K]:
		if root, ok := tree.Root(); ok {
			return binaryShape(root, func(n bst.Node[K]) (string, treeviz.Class) {
				return fmt.Sprint(n.Key()), treeviz.Plain
			})
		}
	case *avl.Tree[K]:
		if root, ok := tree.Root(); ok {
			return binaryShape(root, func(n avl.Node[K]) (string, treeviz.Class) {
				return fmt.Sprintf("%v [%+d]", n.Key(), n.Balance()), treeviz.Plain
			})
		}
	case *rbtree.Tree[K]:
		if root, ok := tree.Root(); ok {
			return binaryShape(root, func(n rbtree.Node[K]) (string, treeviz.Class) {
				if n.IsRed() {
					return fmt.Sprint(n.Key()), treeviz.Red
				}
				return fmt.Sprint(n.Key()), treeviz.Black
			})
		}
	case *btree.Tree[K]:
		if root, ok := tree.Root(); ok {
			return pageShape(root)
		}
	default:
		T().Infof("cannot shape engine of type %T", engine)
	}
	return nil
}

type binaryNode[N any] interface {
	Left() (N, bool)
	Right() (N, bool)
}

func binaryShape[N binaryNode[N]](n N, label func(N) (string, treeviz.Class)) *treeviz.Node {
	vnode := &treeviz.Node{}
	vnode.Label, vnode.Class = label(n)
	left, hasLeft := n.Left()
	right, hasRight := n.Right()
	if !hasLeft && !hasRight {
		return vnode
	}
	vnode.Children = make([]*treeviz.Node, 2)
	if hasLeft {
		vnode.Children[0] = binaryShape(left, label)
	}
	if hasRight {
		vnode.Children[1] = binaryShape(right, label)
	}
	return vnode
}

func pageShape[K cmp.Ordered](n btree.Node[K]) *treeviz.Node {
	keys := n.Keys()
	labels := make([]string, len(keys))
	for i, key := range keys {
		labels[i] = fmt.Sprint(key)
	}
	vnode := &treeviz.Node{
		Label: strings.Join(labels, " | "),
		Class: treeviz.Page,
	}
	for _, child := range n.Children() {
		vnode.Children = append(vnode.Children, pageShape(child))
	}
	return vnode
}
