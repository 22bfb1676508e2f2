// Package gobtree implements a classical in-memory B-tree: a balanced,
// ordered container of unique keys parameterised by a minimum degree t.
//
// A B-tree generalises a binary search tree to an arbitrary branching
// factor. Every non-root node holds between t-1 and 2t-1 keys; all leaves
// sit at the same depth. Insertion proactively splits full nodes on the way
// down so a single pass suffices; deletion proactively rebalances thin
// nodes on the way down for the same reason.
//
// This package stores a flat set of totally ordered values: there is no
// associated payload, no duplicate keys, and no persistence. Keys must
// implement Comparable, a single three-way comparison.
//
// Example usage:
//
//	tree, err := gobtree.Create[myKey](32)
//	if err != nil {
//	    // t < 2
//	}
//	if err := tree.Insert(k); err != nil {
//	    // errors.Is(err, gobtree.ErrDuplicateKey)
//	}
//	if got, ok := tree.Search(k); ok {
//	    fmt.Println(got)
//	}
//
//	var it gobtree.Iterator[myKey]
//	for k, ok := tree.First(lo, &it); ok; k, ok = it.Next() {
//	    fmt.Println(k)
//	}
//
// None of the operations in this package are safe for concurrent use
// without external synchronisation: mutators rewrite the pointer chains
// that Search and the iterator walk.
package gobtree
