package omap

import (
	"fmt"
)

type color uint8

const (
	black color = iota
	red
)

// sentinel is the arena index of the shared black leaf.
const sentinel = 0

type node[V any] struct {
	key                 Key
	value               V
	left, right, parent int
	color               color
}

// Map is an ordered map from Key to V, implemented as a red-black tree.
//
// Values are stored by value; V may itself be a pointer or handle type. The
// map never takes ownership of what values refer to, unless a release
// callback is handed to Clear or Destroy.
//
// The zero Map is an empty map ready to use.
type Map[V any] struct {
	nodes     []node[V] // arena; nodes[sentinel] is the sentinel
	root      int
	kind      Kind
	destroyed bool
}

// New creates an empty map. The root is the sentinel.
func New[V any]() *Map[V] {
	m := &Map[V]{}
	m.reset()
	return m
}

func (m *Map[V]) reset() {
	m.nodes = make([]node[V], 1, 16)
	m.nodes[sentinel] = node[V]{color: black}
	m.root = sentinel
	m.kind = KindNone
}

// Len returns the number of entries in the map.
func (m *Map[V]) Len() int {
	if m == nil || len(m.nodes) == 0 {
		return 0
	}
	return len(m.nodes) - 1
}

// IsEmpty reports whether the map has no entries.
func (m *Map[V]) IsEmpty() bool {
	return m.Len() == 0
}

// Kind returns the key kind of the map, or KindNone for an empty map.
func (m *Map[V]) Kind() Kind {
	if m == nil {
		return KindNone
	}
	return m.kind
}

// Height returns the number of nodes on the longest path from the root to a
// leaf; 0 for an empty map.
func (m *Map[V]) Height() int {
	if m == nil || m.destroyed {
		return 0
	}
	return m.height(m.root)
}

func (m *Map[V]) height(n int) int {
	if n == sentinel {
		return 0
	}
	return 1 + max(m.height(m.nodes[n].left), m.height(m.nodes[n].right))
}

// Put inserts value under key k. If an entry with an equal key exists, its
// value is overwritten in place and the tree is left unchanged.
//
// Put fails with ErrInvalidKey for keys which cannot be ordered, with
// ErrKindMismatch if k differs in kind from the keys already present, and
// with ErrDestroyed after Destroy.
func (m *Map[V]) Put(k Key, value V) error {
	if m.destroyed {
		return ErrDestroyed
	}
	if err := k.Validate(); err != nil {
		return err
	}
	if len(m.nodes) == 0 {
		m.reset()
	}
	if m.kind != KindNone && k.kind != m.kind {
		return fmt.Errorf("%w: map holds %s keys, got %s key %q", ErrKindMismatch, m.kind, k.kind, k)
	}
	y, x, c := sentinel, m.root, 0
	for x != sentinel {
		y = x
		c = compareSameKind(k, m.nodes[x].key)
		if c == 0 {
			m.nodes[x].value = value
			return nil
		} else if c < 0 {
			x = m.nodes[x].left
		} else {
			x = m.nodes[x].right
		}
	}
	z := m.alloc(k, value, y)
	if y == sentinel {
		m.root = z
	} else if c < 0 {
		m.nodes[y].left = z
	} else {
		m.nodes[y].right = z
	}
	m.kind = k.kind
	m.insertFixup(z)
	return nil
}

// Get returns the value stored under k. The boolean result is false if the
// map holds no entry for k; keys of a foreign kind are never present.
func (m *Map[V]) Get(k Key) (V, bool) {
	var zero V
	if m == nil || m.destroyed || k.kind != m.kind {
		return zero, false
	}
	if n := m.find(k); n != sentinel {
		return m.nodes[n].value, true
	}
	return zero, false
}

// Contains reports whether the map holds an entry for k.
func (m *Map[V]) Contains(k Key) bool {
	_, ok := m.Get(k)
	return ok
}

func (m *Map[V]) find(k Key) int {
	x := m.root
	for x != sentinel {
		c := compareSameKind(k, m.nodes[x].key)
		if c == 0 {
			return x
		} else if c < 0 {
			x = m.nodes[x].left
		} else {
			x = m.nodes[x].right
		}
	}
	return sentinel
}

// Clear removes all entries. If release is non-nil, it is called for every
// entry before the entry is dropped, children before their parent. The map
// remains usable and accepts keys of any kind afterwards.
func (m *Map[V]) Clear(release func(Key, V)) {
	if m.destroyed {
		return
	}
	if len(m.nodes) == 0 {
		m.reset()
		return
	}
	if release != nil {
		m.postOrder(m.root, release)
	}
	tracer().Debugf("omap: clear %d entries", m.Len())
	clear(m.nodes[1:])
	m.nodes = m.nodes[:1]
	m.root = sentinel
	m.kind = KindNone
}

// Destroy releases all entries like Clear and then drops the arena including
// the sentinel. A destroyed map is empty and rejects further insertions with
// ErrDestroyed.
func (m *Map[V]) Destroy(release func(Key, V)) {
	if m.destroyed {
		return
	}
	if release != nil {
		m.postOrder(m.root, release)
	}
	m.nodes = nil
	m.root = sentinel
	m.kind = KindNone
	m.destroyed = true
}

// IsDestroyed reports whether Destroy has been called on the map.
func (m *Map[V]) IsDestroyed() bool {
	return m.destroyed
}

func (m *Map[V]) postOrder(n int, release func(Key, V)) {
	if n == sentinel {
		return
	}
	m.postOrder(m.nodes[n].left, release)
	m.postOrder(m.nodes[n].right, release)
	release(m.nodes[n].key, m.nodes[n].value)
}

// --- Red-black tree maintenance --------------------------------------------

func (m *Map[V]) alloc(k Key, value V, parent int) int {
	m.nodes = append(m.nodes, node[V]{
		key:    k,
		value:  value,
		left:   sentinel,
		right:  sentinel,
		parent: parent,
		color:  red,
	})
	return len(m.nodes) - 1
}

// insertFixup restores the red-black properties after z has been linked in
// as a red leaf.
func (m *Map[V]) insertFixup(z int) {
	nd := m.nodes
	for nd[nd[z].parent].color == red {
		p := nd[z].parent
		g := nd[p].parent
		if p == nd[g].left {
			if u := nd[g].right; nd[u].color == red {
				nd[p].color = black
				nd[u].color = black
				nd[g].color = red
				z = g
				continue
			}
			if z == nd[p].right {
				z = p
				m.rotateLeft(z)
				p = nd[z].parent
			}
			nd[p].color = black
			nd[g].color = red
			m.rotateRight(g)
		} else {
			if u := nd[g].left; nd[u].color == red {
				nd[p].color = black
				nd[u].color = black
				nd[g].color = red
				z = g
				continue
			}
			if z == nd[p].left {
				z = p
				m.rotateRight(z)
				p = nd[z].parent
			}
			nd[p].color = black
			nd[g].color = red
			m.rotateLeft(g)
		}
	}
	nd[m.root].color = black
	assert(nd[sentinel].color == black, "omap: sentinel has been colored red")
}

// rotateLeft turns x's right child y into the parent of x.
//
//	  x              y
//	a   y    =>    x   c
//	   b c        a b
func (m *Map[V]) rotateLeft(x int) {
	nd := m.nodes
	y := nd[x].right
	nd[x].right = nd[y].left
	if nd[y].left != sentinel {
		nd[nd[y].left].parent = x
	}
	m.replaceChild(x, y)
	nd[y].left = x
	nd[x].parent = y
}

// rotateRight turns x's left child y into the parent of x.
//
//	    x          y
//	  y   c  =>  a   x
//	 a b            b c
func (m *Map[V]) rotateRight(x int) {
	nd := m.nodes
	y := nd[x].left
	nd[x].left = nd[y].right
	if nd[y].right != sentinel {
		nd[nd[y].right].parent = x
	}
	m.replaceChild(x, y)
	nd[y].right = x
	nd[x].parent = y
}

// replaceChild links y into the position x occupies below x's parent.
func (m *Map[V]) replaceChild(x, y int) {
	nd := m.nodes
	p := nd[x].parent
	nd[y].parent = p
	if p == sentinel {
		m.root = y
	} else if x == nd[p].left {
		nd[p].left = y
	} else {
		nd[p].right = y
	}
}
