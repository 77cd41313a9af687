package omap

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteDot outputs the internal structure of a map in Graphviz DOT format
// (for debugging purposes). Red nodes are filled red, black nodes black;
// sentinel leaves are drawn as small empty points.
func (m *Map[V]) WriteDot(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("strict digraph {\n")
	bw.WriteString("\tnode [fontname=Arial,fontsize=12,style=filled,fontcolor=white];\n")
	if m != nil && !m.destroyed && m.root != sentinel {
		var nodelist, edgelist strings.Builder
		leaves := 0
		var walk func(n int)
		walk = func(n int) {
			nd := &m.nodes[n]
			fmt.Fprintf(&nodelist, "\t\"%d\" [label=%q %s];\n", n, nd.key.String(), nodeDotStyles(nd.color))
			for _, child := range []int{nd.left, nd.right} {
				if child == sentinel {
					leaves++
					fmt.Fprintf(&nodelist, "\t\"nil%d\" %s;\n", leaves, emptyNode())
					fmt.Fprintf(&edgelist, "\t\"%d\" -> \"nil%d\";\n", n, leaves)
					continue
				}
				fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%d\";\n", n, child)
				walk(child)
			}
		}
		walk(m.root)
		bw.WriteString(nodelist.String())
		bw.WriteString(edgelist.String())
	}
	bw.WriteString("}\n")
	if err := bw.Flush(); err != nil {
		tracer().Errorf("omap DOT: %s", err.Error())
		return err
	}
	return nil
}

func nodeDotStyles(c color) string {
	if c == red {
		return ",fillcolor=\"#cc2222\",color=\"#cc2222\""
	}
	return ",fillcolor=black,color=black"
}

func emptyNode() string {
	return "[label=\"\",shape=point,color=black,width=.1]"
}
