package arbor

import (
	"fmt"
	"io"
)

type nodeids[T any] struct {
	idTable map[Node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[Node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(node Node[T]) int {
	return ids.idTable[node]
}

func (ids *nodeids[T]) alloc(node Node[T]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the structure of a tree in Graphviz DOT format
// (for debugging purposes).
func Tree2Dot[S any](root Node[S], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[S]()
	nodelist, edgelist := "", ""
	err := EachBreadthFirst(root, func(node Node[S]) error {
		ID := ids.alloc(node)
		label := fmt.Sprintf("%v", node.Value())
		styles := nodeDotStyles(node.Degree() == 0)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, styles)
		for ch := range node.Children() {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(ch))
		}
		return nil
	})
	if err != nil {
		T().Errorf("tree DOT: %s", err.Error())
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
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
