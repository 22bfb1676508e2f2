package gobtree

import "golang.org/x/exp/slices"

// node is a single B-tree node. It is uniform except for the leaf flag: a
// leaf has a nil children slice, an internal node always has len(children)
// == len(keys)+1. keys is kept strictly ascending and never grows past
// 2t-1 entries; children, when present, never grows past 2t.
//
// t is copied from the owning Tree for convenience; it never changes once
// a node is allocated, and leaf-vs-internal is fixed at allocation too:
// a leaf never becomes internal in place. When a leaf's subtree must grow
// a new root is introduced instead (see Tree.Insert).
type node[T Comparable[T]] struct {
	t        int
	leaf     bool
	keys     []T
	children []*node[T]
}

func newLeaf[T Comparable[T]](t int) *node[T] {
	return &node[T]{
		t:    t,
		leaf: true,
		keys: make([]T, 0, 2*t-1),
	}
}

func newInternal[T Comparable[T]](t int) *node[T] {
	return &node[T]{
		t:        t,
		leaf:     false,
		keys:     make([]T, 0, 2*t-1),
		children: make([]*node[T], 0, 2*t),
	}
}

func newNode[T Comparable[T]](t int, leaf bool) *node[T] {
	if leaf {
		return newLeaf[T](t)
	}
	return newInternal[T](t)
}

func (n *node[T]) size() int { return len(n.keys) }

func (n *node[T]) full() bool { return len(n.keys) == 2*n.t-1 }

// thin reports whether the node holds the minimum number of keys a
// non-root node is allowed to have (t-1); such a node cannot lose a key
// without the deletion algorithm first rebalancing it.
func (n *node[T]) thin() bool { return len(n.keys) == n.t-1 }

func (n *node[T]) insertKeyAt(idx int, k T) {
	n.keys = slices.Insert(n.keys, idx, k)
}

func (n *node[T]) removeKeyAt(idx int) T {
	k := n.keys[idx]
	n.keys = slices.Delete(n.keys, idx, idx+1)
	return k
}

func (n *node[T]) insertChildAt(idx int, c *node[T]) {
	n.children = slices.Insert(n.children, idx, c)
}

func (n *node[T]) removeChildAt(idx int) *node[T] {
	c := n.children[idx]
	n.children = slices.Delete(n.children, idx, idx+1)
	return c
}

// destroy releases n's own arrays. It does not recurse into children;
// recursive destruction is a Tree-level operation (Tree.Destroy).
func (n *node[T]) destroy() {
	n.keys = nil
	n.children = nil
}
