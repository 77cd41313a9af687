package omap

import "fmt"

// Check validates the red-black tree invariants:
//
//   - the root and the sentinel are black,
//   - no red node has a red child,
//   - every path from a node to a descendant leaf has the same number of
//     black nodes,
//   - keys are strictly ascending in-order and all of the map's kind,
//   - parent links are consistent and every arena node is reachable.
//
// The checker is strict and intended for tests and debugging.
func (m *Map[V]) Check() error {
	if m == nil {
		return fmt.Errorf("%w: nil map", ErrInvariant)
	}
	if m.destroyed {
		if len(m.nodes) != 0 {
			return fmt.Errorf("%w: destroyed map still holds an arena", ErrInvariant)
		}
		return nil
	}
	if len(m.nodes) == 0 {
		return nil // zero Map
	}
	s := m.nodes[sentinel]
	if s.color != black {
		return fmt.Errorf("%w: sentinel is red", ErrInvariant)
	}
	if s.left != sentinel || s.right != sentinel {
		return fmt.Errorf("%w: sentinel has children", ErrInvariant)
	}
	if m.root == sentinel {
		if m.Len() != 0 {
			return fmt.Errorf("%w: empty tree with %d arena nodes", ErrInvariant, m.Len())
		}
		return nil
	}
	if m.nodes[m.root].color != black {
		return fmt.Errorf("%w: root is red", ErrInvariant)
	}
	if m.nodes[m.root].parent != sentinel {
		return fmt.Errorf("%w: root has a parent", ErrInvariant)
	}
	var prev *Key
	count, _, err := m.checkNode(m.root, &prev)
	if err != nil {
		return err
	}
	if count != m.Len() {
		return fmt.Errorf("%w: %d nodes reachable, arena holds %d", ErrInvariant, count, m.Len())
	}
	return nil
}

// checkNode returns the number of real nodes in the subtree at n and its
// black height.
func (m *Map[V]) checkNode(n int, prev **Key) (count int, blackHeight int, err error) {
	if n == sentinel {
		return 0, 1, nil
	}
	if n < 0 || n >= len(m.nodes) {
		return 0, 0, fmt.Errorf("%w: node index %d outside arena", ErrInvariant, n)
	}
	nd := &m.nodes[n]
	for _, child := range []int{nd.left, nd.right} {
		if child == sentinel {
			continue
		}
		if m.nodes[child].parent != n {
			return 0, 0, fmt.Errorf("%w: broken parent link at %q", ErrInvariant, m.nodes[child].key)
		}
		if nd.color == red && m.nodes[child].color == red {
			return 0, 0, fmt.Errorf("%w: red node %q has red child %q",
				ErrInvariant, nd.key, m.nodes[child].key)
		}
	}
	lcount, lheight, err := m.checkNode(nd.left, prev)
	if err != nil {
		return 0, 0, err
	}
	if nd.key.kind != m.kind {
		return 0, 0, fmt.Errorf("%w: key %q of kind %s in %s map", ErrInvariant, nd.key, nd.key.kind, m.kind)
	}
	if *prev != nil && compareSameKind(**prev, nd.key) >= 0 {
		return 0, 0, fmt.Errorf("%w: keys out of order (%q before %q)", ErrInvariant, **prev, nd.key)
	}
	*prev = &nd.key
	rcount, rheight, err := m.checkNode(nd.right, prev)
	if err != nil {
		return 0, 0, err
	}
	if lheight != rheight {
		return 0, 0, fmt.Errorf("%w: non-uniform black height at %q (%d != %d)",
			ErrInvariant, nd.key, lheight, rheight)
	}
	if nd.color == black {
		lheight++
	}
	return lcount + rcount + 1, lheight, nil
}

// BlackHeight returns the number of black nodes on every path from the root
// to a leaf, counting the sentinel. It is 1 for an empty map and 0 if the
// tree violates its invariants.
func (m *Map[V]) BlackHeight() int {
	if m == nil || m.destroyed || len(m.nodes) == 0 {
		return 0
	}
	var prev *Key
	_, h, err := m.checkNode(m.root, &prev)
	if err != nil {
		return 0
	}
	return h
}
