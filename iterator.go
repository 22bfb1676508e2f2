package gobtree

import "iter"

// frame records one step of the descent path to the iterator's current
// position: which node, and which key/child index within it.
type frame[T Comparable[T]] struct {
	n   *node[T]
	idx int
}

// Iterator is a bidirectional cursor over a Tree's keys, positioned by
// Tree.First or Tree.Last and advanced with Next/Prev. Its state is a
// bounded stack of frames recording the descent path to the cursor's
// position; depth never exceeds the tree's height, itself bounded by
// log_t(size). The zero value is ready to use once positioned.
//
// An Iterator reads nodes only; it never mutates the tree. The tree must
// not be mutated while an Iterator positioned on it is still in use. This
// is a contract, not something the type enforces at runtime.
type Iterator[T Comparable[T]] struct {
	stack []frame[T]
}

func (it *Iterator[T]) reset() {
	it.stack = it.stack[:0]
}

func (it *Iterator[T]) push(n *node[T], idx int) {
	it.stack = append(it.stack, frame[T]{n, idx})
}

func (it *Iterator[T]) pop() {
	it.stack = it.stack[:len(it.stack)-1]
}

func (it *Iterator[T]) empty() bool {
	return len(it.stack) == 0
}

// descend walks from root toward k, pushing one frame per node visited.
// For forLast, an exact match pushes idx+1 (so Prev yields the match
// itself); for First, an exact match pushes idx unchanged (so Next does).
// Descent stops at a leaf or on an exact match.
func (it *Iterator[T]) descend(root *node[T], k T, forLast bool) {
	it.reset()
	n := root
	for {
		found, idx := searchKeys(n.keys, k)
		pushIdx := idx
		if found && forLast {
			pushIdx = idx + 1
		}
		it.push(n, pushIdx)
		if n.leaf || found {
			return
		}
		n = n.children[idx]
	}
}

// next advances past the top frame's current position and, if it borders
// a right child, pushes that child's leftmost descent path so later calls
// continue into it. It reports the key the top frame held before
// advancing, or false if the frame is exhausted.
func (it *Iterator[T]) next() (T, bool) {
	f := &it.stack[len(it.stack)-1]
	n, idx := f.n, f.idx
	f.idx++

	if !n.leaf && idx < n.size() {
		sub := n.children[idx+1]
		for {
			it.push(sub, 0)
			if sub.leaf {
				break
			}
			sub = sub.children[0]
		}
	}

	if idx < n.size() {
		return n.keys[idx], true
	}
	var zero T
	return zero, false
}

// prev is the mirror of next, walking toward the start of the tree.
func (it *Iterator[T]) prev() (T, bool) {
	f := &it.stack[len(it.stack)-1]
	n, idx := f.n, f.idx
	f.idx--

	if !n.leaf && idx > 0 {
		sub := n.children[idx-1]
		for {
			it.push(sub, sub.size())
			if sub.leaf {
				break
			}
			sub = sub.children[len(sub.children)-1]
		}
	}

	if idx > 0 {
		return n.keys[idx-1], true
	}
	var zero T
	return zero, false
}

// Next returns the next key in ascending order and advances the cursor, or
// reports false once the iteration is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	for !it.empty() {
		if k, ok := it.next(); ok {
			return k, true
		}
		it.pop()
	}
	var zero T
	return zero, false
}

// Prev returns the next key in descending order and retreats the cursor,
// or reports false once the iteration is exhausted.
func (it *Iterator[T]) Prev() (T, bool) {
	for !it.empty() {
		if k, ok := it.prev(); ok {
			return k, true
		}
		it.pop()
	}
	var zero T
	return zero, false
}

// First positions it so that Next yields the smallest stored key >= k (and
// every key after it, in order), returning that first key directly. It
// reports false if no such key exists.
func (tr *Tree[T]) First(k T, it *Iterator[T]) (T, bool) {
	it.descend(tr.root, k, false)
	return it.Next()
}

// Last positions it so that Prev yields the largest stored key <= k (and
// every key before it, in order), returning that first key directly. It
// reports false if no such key exists.
func (tr *Tree[T]) Last(k T, it *Iterator[T]) (T, bool) {
	it.descend(tr.root, k, true)
	return it.Prev()
}

// Range returns a range-over-func sequence of the keys in [lo, hi), built
// on top of First/Next. It is pure sugar over the iterator primitives: it
// adds no mutation semantics of its own. Modeled on the BTREE_FOREACH macro
// in the C original this package descends from.
func (tr *Tree[T]) Range(lo, hi T) iter.Seq[T] {
	return func(yield func(T) bool) {
		var it Iterator[T]
		k, ok := tr.First(lo, &it)
		for ok && k.Compare(hi) < 0 {
			if !yield(k) {
				return
			}
			k, ok = it.Next()
		}
	}
}
