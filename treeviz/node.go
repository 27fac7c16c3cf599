package treeviz

// Class tells renderers how to style a node.
type Class int

// Node classes
const (
	Plain Class = iota // binary search tree node without extra state
	Red                // red node of a red-black tree
	Black              // black node of a red-black tree
	Page               // multi-key node of a B-tree
)

func (c Class) String() string {
	switch c {
	case Red:
		return "red"
	case Black:
		return "black"
	case Page:
		return "page"
	}
	return "plain"
}

// Node is a renderer-neutral tree node.
//
// For binary trees a node with a single child keeps a nil entry at the
// position of the missing child, so renderers can tell left from right.
// A node without children has an empty Children slice.
type Node struct {
	Label    string
	Class    Class
	Children []*Node
}

// Walk visits the tree rooted at n in pre-order, passing each node's depth
// (0 for n). Nil children are skipped. Walking stops at the first error.
func (n *Node) Walk(fn func(node *Node, depth int) error) error {
	return n.walk(fn, 0)
}

func (n *Node) walk(fn func(node *Node, depth int) error, depth int) error {
	if n == nil {
		return nil
	}
	if err := fn(n, depth); err != nil {
		return err
	}
	for _, child := range n.Children {
		if err := child.walk(fn, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of (non-nil) nodes of the tree rooted at n.
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node, int) error {
		count++
		return nil
	})
	return count
}
