package bintree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[V any] struct {
	idTable map[*Node[V]]int
	max     int
}

func newtable[V any]() nodeids[V] {
	return nodeids[V]{
		idTable: make(map[*Node[V]]int),
		max:     1,
	}
}

func (ids nodeids[V]) find(node *Node[V]) int {
	return ids.idTable[node]
}

func (ids *nodeids[V]) alloc(node *Node[V]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
func Tree2Dot[V any](root *Node[V], w io.Writer) error {
	ids := newtable[V]()
	var nodelist, edgelist strings.Builder
	nilcnt := 0
	for _, node := range LevelOrder(root) {
		ID := ids.alloc(node)
		styles := nodeDotStyles(IsLeaf(node))
		label := strings.ReplaceAll(node.String(), `"`, `\"`)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label, styles)
		if IsLeaf(node) {
			continue
		}
		for _, child := range [2]*Node[V]{node.left, node.right} {
			if child == nil {
				nilcnt++
				nilid := fmt.Sprintf("nil%d", nilcnt)
				fmt.Fprintf(&nodelist, "\"%s\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%s\";\n", ID, nilid)
			} else {
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			}
		}
	}
	out := "strict digraph {\n" +
		"\tnode [fontname=Arial,fontsize=12];\n" +
		nodelist.String() + edgelist.String() + "}\n"
	if _, err := io.WriteString(w, out); err != nil {
		T().Errorf("tree DOT: %s", err.Error())
		return err
	}
	return nil
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
