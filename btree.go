package gobtree

import "fmt"

// Tree is an in-memory B-tree of unique, totally ordered keys. The zero
// value is not usable; construct one with Create or New.
type Tree[T Comparable[T]] struct {
	t     int
	root  *node[T]
	alloc allocator[T]
}

// Degree returns the minimum degree the tree was created with.
func (tr *Tree[T]) Degree() int { return tr.t }

// Destroy releases every node reachable from the root via a post-order
// traversal. The tree must not be used afterward.
func (tr *Tree[T]) Destroy() {
	destroyRecursive(tr.root)
	tr.root = nil
}

func destroyRecursive[T Comparable[T]](n *node[T]) {
	if n == nil {
		return
	}
	if !n.leaf {
		for _, c := range n.children {
			destroyRecursive(c)
		}
	}
	n.destroy()
}

// Search looks up k and reports whether it is present, returning the
// stored value on success. For a Comparable key, the stored value compares
// equal to k, but returning it (rather than a bare bool) lets callers
// retrieve the full key when Compare ignores some of its fields.
func (tr *Tree[T]) Search(k T) (T, bool) {
	n := tr.root
	for {
		found, idx := searchKeys(n.keys, k)
		if found {
			return n.keys[idx], true
		}
		if n.leaf {
			var zero T
			return zero, false
		}
		n = n.children[idx]
	}
}

// Min returns the smallest key in the tree, or false if the tree is empty.
func (tr *Tree[T]) Min() (T, bool) {
	n := tr.root
	if n.size() == 0 {
		var zero T
		return zero, false
	}
	for !n.leaf {
		n = n.children[0]
	}
	return n.keys[0], true
}

// Max returns the largest key in the tree, or false if the tree is empty.
func (tr *Tree[T]) Max() (T, bool) {
	n := tr.root
	if n.size() == 0 {
		var zero T
		return zero, false
	}
	for !n.leaf {
		n = n.children[len(n.children)-1]
	}
	return n.keys[len(n.keys)-1], true
}

// Insert adds k to the tree, splitting full nodes on the way down so the
// descent never enters a full node. Returns ErrDuplicateKey (wrapped with
// the key) if k is already present, or ErrAllocationFailure if a split
// could not allocate its new sibling. In either failure case the tree's
// invariants still hold, since every split allocates its sibling before
// mutating the parent it will be attached to.
func (tr *Tree[T]) Insert(k T) error {
	if tr.root.full() {
		newRoot, err := tr.alloc.newNode(tr.t, false)
		if err != nil {
			return err
		}
		newRoot.children = append(newRoot.children, tr.root)
		if err := tr.splitChild(newRoot, 0); err != nil {
			// newRoot is discarded; tr.root was never reassigned.
			return err
		}
		tr.root = newRoot
	}

	n := tr.root
	for {
		found, idx := searchKeys(n.keys, k)
		if found {
			return fmt.Errorf("gobtree: insert %v: %w", k, ErrDuplicateKey)
		}
		if n.leaf {
			n.insertKeyAt(idx, k)
			return nil
		}

		child := n.children[idx]
		if child.full() {
			if err := tr.splitChild(n, idx); err != nil {
				return err
			}
			switch cmp := k.Compare(n.keys[idx]); {
			case cmp == 0:
				return fmt.Errorf("gobtree: insert %v: %w", k, ErrDuplicateKey)
			case cmp > 0:
				idx++
			}
		}
		n = n.children[idx]
	}
}

// Delete removes k from the tree, rebalancing thin nodes on the way down
// so the node that ends up holding the edit always has a key to spare.
// Returns ErrNotFound (wrapped with the key) if k is absent.
func (tr *Tree[T]) Delete(k T) error {
	n := tr.root
	found, idx := searchKeys(n.keys, k)
	for !found {
		if n.leaf {
			return fmt.Errorf("gobtree: delete %v: %w", k, ErrNotFound)
		}
		child := n.children[idx]
		if child.thin() {
			child = tr.repairChild(n, idx)
		}
		n = child
		found, idx = searchKeys(n.keys, k)
	}
	tr.deleteAt(n, idx)
	return nil
}

// repairChild ensures children[idx] has more than t-1 keys before the
// caller descends into it: a rotation when a sibling has a key to spare,
// otherwise a merge. It returns the node that now occupies this step of
// the descent path: the same node, if rotated, or the merged node that
// replaced it and its sibling.
func (tr *Tree[T]) repairChild(parent *node[T], idx int) *node[T] {
	hasRightSibling := idx < len(parent.children)-1
	hasLeftSibling := idx > 0

	switch {
	case hasRightSibling && !parent.children[idx+1].thin():
		rotateRightToLeft(parent, idx)
		return parent.children[idx]
	case hasLeftSibling && !parent.children[idx-1].thin():
		rotateLeftToRight(parent, idx-1)
		return parent.children[idx]
	case hasRightSibling:
		merged := mergeChildren(parent, idx)
		tr.shrinkRootIfEmpty(parent)
		return merged
	default:
		merged := mergeChildren(parent, idx-1)
		tr.shrinkRootIfEmpty(parent)
		return merged
	}
}

// shrinkRootIfEmpty promotes the sole remaining child to root once a merge
// has emptied the root. This is the only place tree height decreases.
func (tr *Tree[T]) shrinkRootIfEmpty(n *node[T]) {
	if n == tr.root && n.size() == 0 && !n.leaf {
		newRoot := n.children[0]
		n.destroy()
		tr.root = newRoot
	}
}

// deleteAt removes the key at n.keys[idx]. A leaf loses the key directly;
// an internal node borrows a predecessor or successor from whichever
// adjacent child has a key to spare, or merges both children plus the key
// and continues into the merged node.
func (tr *Tree[T]) deleteAt(n *node[T], idx int) {
	for {
		if n.leaf {
			n.removeKeyAt(idx)
			return
		}

		left, right := n.children[idx], n.children[idx+1]
		switch {
		case !left.thin():
			n.keys[idx] = tr.deleteMax(left)
			return
		case !right.thin():
			n.keys[idx] = tr.deleteMin(right)
			return
		default:
			merged := mergeChildren(n, idx)
			tr.shrinkRootIfEmpty(n)
			n, idx = merged, tr.t-1
		}
	}
}

// deleteMax removes and returns the maximum key of the subtree rooted at
// n, repairing thin children along the rightmost descent path. n itself
// is guaranteed not thin by the caller.
func (tr *Tree[T]) deleteMax(n *node[T]) T {
	for !n.leaf {
		idx := len(n.children) - 1
		child := n.children[idx]
		if child.thin() {
			child = tr.repairChild(n, idx)
		}
		n = child
	}
	return n.removeKeyAt(len(n.keys) - 1)
}

// deleteMin is the mirror of deleteMax along the leftmost descent path.
func (tr *Tree[T]) deleteMin(n *node[T]) T {
	for !n.leaf {
		child := n.children[0]
		if child.thin() {
			child = tr.repairChild(n, 0)
		}
		n = child
	}
	return n.removeKeyAt(0)
}
