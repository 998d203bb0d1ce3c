package intervals

import (
	"cmp"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Tree2Dot outputs the internal structure of a Tree in Graphviz DOT format
// (for debugging purposes). Every node is labeled with its interval, its
// subtree maximum and its height.
func Tree2Dot[K cmp.Ordered, V any](t *Tree[K, V], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	if t != nil {
		nextid := 1
		nodeDot(t.root, &nextid, w)
	}
	io.WriteString(w, "}\n")
}

func nodeDot[K cmp.Ordered, V any](n *node[K, V], nextid *int, w io.Writer) int {
	id := *nextid
	*nextid = id + 1
	label := fmt.Sprintf("%s\\nmax=%v h=%d", n.key, n.max, n.height)
	fmt.Fprintf(w, "\"%d\" [label=\"%s\"];\n", id, label)
	for _, child := range []*node[K, V]{n.left, n.right} {
		if child == nil {
			nilid := *nextid
			*nextid = nilid + 1
			fmt.Fprintf(w, "\"%d\" [label=\"\",color=black,shape=circle,fixedsize=true,width=.2];\n", nilid)
			fmt.Fprintf(w, "\"%d\" -> \"%d\";\n", id, nilid)
			continue
		}
		cid := nodeDot(child, nextid, w)
		fmt.Fprintf(w, "\"%d\" -> \"%d\";\n", id, cid)
	}
	return id
}

var (
	keyColor = color.New(color.FgBlue)
	maxColor = color.New(color.FgYellow)
)

// Print writes an indented sideways dump of the tree to w, right subtree
// first (for debugging purposes). Interval keys and subtree maxima are
// colorized when w is a terminal.
func (t *Tree[K, V]) Print(w io.Writer) {
	if t.IsEmpty() {
		fmt.Fprintln(w, "·")
		return
	}
	printNode(t.root, 0, w)
}

func printNode[K cmp.Ordered, V any](n *node[K, V], depth int, w io.Writer) {
	if n == nil {
		return
	}
	printNode(n.right, depth+1, w)
	for i := 0; i < depth; i++ {
		io.WriteString(w, "    ")
	}
	fmt.Fprintf(w, "%s %s\n", keyColor.Sprint(n.key.String()),
		maxColor.Sprintf("(max %v)", n.max))
	printNode(n.left, depth+1, w)
}
