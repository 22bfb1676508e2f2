package gobtree

import "golang.org/x/exp/slices"

// binarySearchThreshold is the node size above which searchKeys switches
// from a linear scan to a binary search. Below it, the linear scan wins on
// comparison count and loses nothing to branch misprediction, so it is the
// cheaper choice; above it, binary search's logarithmic comparison count
// dominates.
const binarySearchThreshold = 16

// searchKeys locates k within a node's ascending key slice. If found, idx
// is the position of the match. If not, idx is the smallest position such
// that keys[idx] > k: the index of the child to descend into, or the
// insertion point in a leaf.
func searchKeys[T Comparable[T]](keys []T, k T) (found bool, idx int) {
	if len(keys) > binarySearchThreshold {
		idx, found = slices.BinarySearchFunc(keys, k, func(a, b T) int { return a.Compare(b) })
		return found, idx
	}

	i := 0
	for i < len(keys) && keys[i].Compare(k) < 0 {
		i++
	}
	if i < len(keys) && keys[i].Compare(k) == 0 {
		return true, i
	}
	return false, i
}
