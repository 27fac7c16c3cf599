package treeviz

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ToHTML writes a tree as a nested HTML list. Every node becomes an <li>
// holding a <span> with the node's label and its class name as CSS class;
// missing binary children become empty items of class "empty".
func ToHTML(root *Node, w io.Writer) error {
	return html.Render(w, Fragment(root))
}

// Fragment builds the <ul> element representing a tree.
func Fragment(root *Node) *html.Node {
	ul := element(atom.Ul, "tree")
	if root != nil {
		ul.AppendChild(listItem(root))
	}
	return ul
}

func listItem(n *Node) *html.Node {
	if n == nil {
		return element(atom.Li, "empty")
	}
	li := element(atom.Li, "")
	span := element(atom.Span, n.Class.String())
	span.AppendChild(&html.Node{Type: html.TextNode, Data: n.Label})
	li.AppendChild(span)
	if len(n.Children) > 0 {
		ul := element(atom.Ul, "")
		for _, child := range n.Children {
			ul.AppendChild(listItem(child))
		}
		li.AppendChild(ul)
	}
	return li
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}
