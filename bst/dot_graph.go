package bst

import (
	"fmt"

	"github.com/emicklei/dot"
)

// DotGraph renders the tree as a Graphviz digraph. Nodes are labeled "k:v"
// and edges "l" or "r".
func (t *Tree[K, V]) DotGraph() string {
	graph := dot.NewGraph(dot.Directed)
	if t.root == nil {
		return graph.String()
	}

	type frame struct {
		n      *node[K, V]
		parent *dot.Node
		dir    string
	}
	id := 0
	stack := []frame{{n: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		gn := graph.Node(fmt.Sprintf("n%d", id)).Label(entryString(f.n))
		id++
		if f.parent != nil {
			f.parent.Edge(gn, f.dir)
		}
		if f.n.right != nil {
			stack = append(stack, frame{f.n.right, &gn, "r"})
		}
		if f.n.left != nil {
			stack = append(stack, frame{f.n.left, &gn, "l"})
		}
	}
	return graph.String()
}
