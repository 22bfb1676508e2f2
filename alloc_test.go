package gobtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllocationFailureOnRootSplitLeavesTreeIntact(t *testing.T) {
	alloc := newCountingAllocator[intKey](0)
	tr, err := New[intKey](2, WithAllocator[intKey](alloc))
	require.NoError(t, err)

	// Fill the root to capacity (2t-1 = 3 keys) without triggering a split.
	for _, k := range []intKey{1, 2, 3} {
		require.NoError(t, tr.Insert(k))
	}
	before := inOrder(tr)

	// The next Insert must split the root, which allocates the new root and
	// then the split sibling; failing the first leaves the old root in place.
	alloc.failAt = alloc.calls + 1
	err = tr.Insert(intKey(4))
	require.ErrorIs(t, err, ErrAllocationFailure)

	auditInvariants(t, tr)
	require.Equal(t, before, inOrder(tr))

	// Disabling failure injection lets the same insert succeed afterward.
	alloc.failAt = 0
	require.NoError(t, tr.Insert(intKey(4)))
	auditInvariants(t, tr)
}

func TestAllocationFailureOnDescentSplitLeavesTreeIntact(t *testing.T) {
	alloc := newCountingAllocator[intKey](0)
	tr, err := New[intKey](2, WithAllocator[intKey](alloc))
	require.NoError(t, err)

	for i := 0; i < 40; i++ {
		require.NoError(t, tr.Insert(intKey(i)))
	}
	before := inOrder(tr)

	alloc.failAt = alloc.calls + 1
	err = tr.Insert(intKey(1000))
	require.ErrorIs(t, err, ErrAllocationFailure)

	auditInvariants(t, tr)
	require.Equal(t, before, inOrder(tr))
}

func TestDefaultAllocatorNeverFails(t *testing.T) {
	a := defaultAllocator[intKey]{}
	n, err := a.newNode(4, true)
	require.NoError(t, err)
	require.NotNil(t, n)
	require.True(t, n.leaf)
}
