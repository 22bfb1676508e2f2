package gobtree

// Option configures a Tree constructed with New. It follows the
// functional-options shape used throughout the retrieved corpus's
// constructors (e.g. Hareesh108-haruDB's NewDatabase/NewWALManager take a
// fixed argument list with defaults filled in afterward); here the only
// knob worth exposing is the node allocator.
type Option[T Comparable[T]] func(*Tree[T])

// WithAllocator installs a non-default node allocator, used to simulate
// AllocationFailure (see alloc.go) or otherwise observe/limit node
// creation. The allocator interface is unexported, so only code inside this
// package can supply one; use Create for the common case.
func WithAllocator[T Comparable[T]](a allocator[T]) Option[T] {
	return func(t *Tree[T]) {
		t.alloc = a
	}
}

// New creates a fresh empty tree with minimum degree t, applying any
// options. It returns ErrInvalidDegree if t < 2.
func New[T Comparable[T]](t int, opts ...Option[T]) (*Tree[T], error) {
	if t < 2 {
		return nil, ErrInvalidDegree
	}
	tree := &Tree[T]{
		t:     t,
		alloc: defaultAllocator[T]{},
	}
	for _, opt := range opts {
		opt(tree)
	}
	tree.root = newLeaf[T](t)
	return tree, nil
}

// Create is the minimal constructor named in the public interface: a tree
// with the default allocator and no further configuration.
func Create[T Comparable[T]](t int) (*Tree[T], error) {
	return New[T](t)
}
