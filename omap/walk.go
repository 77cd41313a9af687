package omap

import "iter"

// Walk visits all entries in ascending key order.
//
// Iteration stops early if visit returns false. The sentinel is never
// visited. visit must not modify the map.
func (m *Map[V]) Walk(visit func(k Key, value V) bool) {
	if m == nil || m.destroyed || visit == nil {
		return
	}
	m.inOrder(m.root, visit)
}

// WalkReverse visits all entries in descending key order.
//
// Iteration stops early if visit returns false.
func (m *Map[V]) WalkReverse(visit func(k Key, value V) bool) {
	if m == nil || m.destroyed || visit == nil {
		return
	}
	m.reverseInOrder(m.root, visit)
}

func (m *Map[V]) inOrder(n int, visit func(Key, V) bool) bool {
	if n == sentinel {
		return true
	}
	nd := &m.nodes[n]
	if !m.inOrder(nd.left, visit) {
		return false
	}
	if !visit(nd.key, nd.value) {
		return false
	}
	return m.inOrder(nd.right, visit)
}

func (m *Map[V]) reverseInOrder(n int, visit func(Key, V) bool) bool {
	if n == sentinel {
		return true
	}
	nd := &m.nodes[n]
	if !m.reverseInOrder(nd.right, visit) {
		return false
	}
	if !visit(nd.key, nd.value) {
		return false
	}
	return m.reverseInOrder(nd.left, visit)
}

// All returns an iterator over all entries in ascending key order.
func (m *Map[V]) All() iter.Seq2[Key, V] {
	return func(yield func(Key, V) bool) {
		m.Walk(yield)
	}
}

// Backward returns an iterator over all entries in descending key order.
func (m *Map[V]) Backward() iter.Seq2[Key, V] {
	return func(yield func(Key, V) bool) {
		m.WalkReverse(yield)
	}
}

// Keys returns an iterator over all keys in ascending order.
func (m *Map[V]) Keys() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		m.Walk(func(k Key, _ V) bool {
			return yield(k)
		})
	}
}

// Min returns the entry with the smallest key. The boolean result is false
// for an empty map.
func (m *Map[V]) Min() (Key, V, bool) {
	return m.extreme(func(n *node[V]) int { return n.left })
}

// Max returns the entry with the largest key. The boolean result is false
// for an empty map.
func (m *Map[V]) Max() (Key, V, bool) {
	return m.extreme(func(n *node[V]) int { return n.right })
}

func (m *Map[V]) extreme(next func(*node[V]) int) (Key, V, bool) {
	var zero V
	if m.IsEmpty() || m.destroyed {
		return Key{}, zero, false
	}
	x := m.root
	for next(&m.nodes[x]) != sentinel {
		x = next(&m.nodes[x])
	}
	return m.nodes[x].key, m.nodes[x].value, true
}
