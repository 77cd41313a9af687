package omap

// NodeInfo describes the position of an entry within the tree.
type NodeInfo[V any] struct {
	Key   Key
	Value V
	Depth int // the root has depth 0
	Red   bool
}

// Shape visits all entries in descending key order, together with their
// depth and color. Printing one line per entry, indented by depth, shows
// the tree turned sideways with the root at the left margin.
//
// Iteration stops early if visit returns false.
func (m *Map[V]) Shape(visit func(NodeInfo[V]) bool) {
	if m == nil || m.destroyed || visit == nil {
		return
	}
	var walk func(n, depth int) bool
	walk = func(n, depth int) bool {
		if n == sentinel {
			return true
		}
		nd := &m.nodes[n]
		if !walk(nd.right, depth+1) {
			return false
		}
		info := NodeInfo[V]{Key: nd.key, Value: nd.value, Depth: depth, Red: nd.color == red}
		if !visit(info) {
			return false
		}
		return walk(nd.left, depth+1)
	}
	walk(m.root, 0)
}
