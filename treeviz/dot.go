package treeviz

import (
	"fmt"
	"io"
	"strings"
)

type nodeids struct {
	idTable map[*Node]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[*Node]int),
		max:     1,
	}
}

func (ids nodeids) find(node *Node) int {
	return ids.idTable[node]
}

func (ids *nodeids) alloc(node *Node) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs a tree in Graphviz DOT format.
//
// Missing children of binary nodes are drawn as small empty circles, so the
// left/right position of single children stays visible.
func ToDot(root *Node, w io.Writer) error {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable()
	nodelist, edgelist := "", ""
	nilcount := 0
	err := root.Walk(func(node *Node, depth int) error {
		ID := ids.alloc(node)
		nodelist += fmt.Sprintf("\t\"%d\" [label=\"%s\"%s];\n", ID, dotEscape(node.Label), nodeDotStyles(node))
		for _, child := range node.Children {
			if child == nil {
				nilcount++
				nilid := fmt.Sprintf("nil%d", nilcount)
				nodelist += fmt.Sprintf("\t\"%s\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\t\"%d\" -> \"%s\";\n", ID, nilid)
				continue
			}
			edgelist += fmt.Sprintf("\t\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
		}
		return nil
	})
	if err != nil {
		T().Errorf("tree DOT: %s", err.Error())
		return err
	}
	b.WriteString(nodelist)
	b.WriteString(edgelist)
	b.WriteString("}\n")
	_, err = io.WriteString(w, b.String())
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(node *Node) string {
	s := ",style=filled"
	switch node.Class {
	case Red:
		s += ",color=black,fillcolor=\"#e4574b\",fontcolor=white,shape=circle"
	case Black:
		s += ",color=black,fillcolor=black,fontcolor=white,shape=circle"
	case Page:
		s += ",fillcolor=\"#a3d7e4\",shape=box"
	default:
		s += ",color=black,fillcolor=\"#a3d7e4\",shape=circle"
	}
	return s
}

func dotEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
