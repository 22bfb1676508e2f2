package gobtree

// Comparable defines a total ordering of values of type T. Keys stored in a
// Tree are constrained by Comparable; it is the single three-way comparison
// the core algorithms depend on.
type Comparable[T any] interface {
	// Compare returns a negative number if the receiver sorts before other,
	// zero if they are equal, and a positive number if it sorts after.
	Compare(other T) int
}
