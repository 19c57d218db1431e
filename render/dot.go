package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/treeharness"
)

type nodeids struct {
	idTable map[treeharness.Node]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[treeharness.Node]int),
		max:     1,
	}
}

func (ids nodeids) find(node treeharness.Node) int {
	return ids.idTable[node]
}

func (ids *nodeids) alloc(node treeharness.Node) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Dot outputs the structure of a tree in Graphviz DOT format (for debugging
// purposes). Nodes are labelled with key and balance factor; absent children
// of inner nodes are drawn as empty circles.
func Dot(t treeharness.Shape, root treeharness.Root, w io.Writer, capacity int) error {
	ids := newtable()
	var nodelist, edgelist strings.Builder
	nilid := 0
	empty := func(parent int) {
		nilid--
		fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
		fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", parent, nilid)
	}
	err := Walk(t, root, capacity, func(n treeharness.Node, depth int) bool {
		ID := ids.alloc(n)
		l, r := t.Left(n), t.Right(n)
		isleaf := l == nil && r == nil
		label := fmt.Sprintf("%d\\n%+d", t.Key(n), t.Balance(n))
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(isleaf, depth))
		if isleaf {
			return true
		}
		for _, child := range [...]treeharness.Node{l, r} {
			if child == nil {
				empty(ID)
			} else {
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			}
		}
		return true
	})
	if err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
		return err
	}
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	_, err = io.WriteString(w, "}\n")
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
}

func nodeDotStyles(isleaf bool, depth int) string {
	s := ",style=filled,color=black"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",shape=circle"
	}
	s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[min(depth, len(hexcolors)-1)])
	return s
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
