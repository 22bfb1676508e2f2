package gobtree

import "testing"

// auditInvariants walks the whole tree and fails t if any invariant from
// the package's design is violated: equal leaf depth, node size bounds,
// ascending keys, and the separator property between a key and its
// flanking children. It returns the in-order key count, which callers
// compare against the expected set size.
func auditInvariants[T Comparable[T]](t *testing.T, tr *Tree[T]) int {
	t.Helper()

	leafDepth := -1
	var count int

	var walk func(n *node[T], depth int, isRoot bool)
	walk = func(n *node[T], depth int, isRoot bool) {
		if !isRoot {
			if n.size() < n.t-1 {
				t.Fatalf("node at depth %d has %d keys, below minimum %d", depth, n.size(), n.t-1)
			}
		}
		if n.size() > 2*n.t-1 {
			t.Fatalf("node at depth %d has %d keys, above maximum %d", depth, n.size(), 2*n.t-1)
		}

		for i := 1; i < n.size(); i++ {
			if n.keys[i-1].Compare(n.keys[i]) >= 0 {
				t.Fatalf("keys not strictly ascending at depth %d: %v >= %v", depth, n.keys[i-1], n.keys[i])
			}
		}

		if n.leaf {
			if leafDepth == -1 {
				leafDepth = depth
			} else if leafDepth != depth {
				t.Fatalf("leaf depth mismatch: saw %d and %d", leafDepth, depth)
			}
			count += n.size()
			return
		}

		if len(n.children) != n.size()+1 {
			t.Fatalf("internal node at depth %d has %d keys but %d children", depth, n.size(), len(n.children))
		}
		count += n.size()

		for i, child := range n.children {
			if i > 0 {
				if minKeyOf(child).Compare(n.keys[i-1]) <= 0 {
					t.Fatalf("child %d at depth %d has a key <= separator %v", i, depth, n.keys[i-1])
				}
			}
			if i < n.size() {
				if maxKeyOf(child).Compare(n.keys[i]) >= 0 {
					t.Fatalf("child %d at depth %d has a key >= separator %v", i, depth, n.keys[i])
				}
			}
			walk(child, depth+1, false)
		}
	}

	walk(tr.root, 0, true)
	return count
}

func maxKeyOf[T Comparable[T]](n *node[T]) T {
	for !n.leaf {
		n = n.children[len(n.children)-1]
	}
	return n.keys[len(n.keys)-1]
}

func minKeyOf[T Comparable[T]](n *node[T]) T {
	for !n.leaf {
		n = n.children[0]
	}
	return n.keys[0]
}

// inOrder collects every key in the tree in ascending order by walking the
// node structure directly, independent of Iterator, so it can be used to
// check the iterator against a trusted baseline.
func inOrder[T Comparable[T]](tr *Tree[T]) []T {
	var out []T
	var walk func(n *node[T])
	walk = func(n *node[T]) {
		if n.leaf {
			out = append(out, n.keys...)
			return
		}
		for i, k := range n.keys {
			walk(n.children[i])
			out = append(out, k)
		}
		walk(n.children[len(n.children)-1])
	}
	walk(tr.root)
	return out
}
