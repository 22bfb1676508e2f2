package gobtree

import "errors"

// Sentinel errors returned by Tree operations. Callers should compare
// against these with errors.Is, since Insert and Delete wrap them with
// positional context.
var (
	// ErrDuplicateKey is returned by Insert when the key is already present.
	ErrDuplicateKey = errors.New("gobtree: key already present")

	// ErrNotFound is returned by Delete when the key is absent.
	ErrNotFound = errors.New("gobtree: key not present")

	// ErrInvalidDegree is returned by Create/New when t < 2.
	ErrInvalidDegree = errors.New("gobtree: minimum degree must be >= 2")

	// ErrAllocationFailure is returned when a node allocation fails. Under
	// normal operation the default allocator never returns it; it is
	// returned when a constrained allocator is installed inside the package
	// (see WithAllocator), as the tests of the AllocationFailure contract do.
	ErrAllocationFailure = errors.New("gobtree: node allocation failed")
)
