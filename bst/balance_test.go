package bst

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinHeight(t *testing.T) {
	cases := map[int]int{0: -1, 1: 0, 2: 1, 3: 1, 4: 2, 7: 2, 8: 3, 15: 3, 16: 4, 1 << 20: 20}
	for n, h := range cases {
		require.Equal(t, h, MinHeight(n), "n=%d", n)
	}
}

func TestBalanceAscending(t *testing.T) {
	tree := NewOrdered[int, int]()
	for i := 1; i <= 15; i++ {
		tree.Insert(i, i*10)
	}
	require.Equal(t, 14, tree.Height())
	before := collect(tree)

	tree.Balance()
	require.Equal(t, 3, tree.Height())
	require.Equal(t, 15, tree.Size())
	require.Equal(t, before, collect(tree))
	require.True(t, tree.IsBalanced())
	require.NoError(t, tree.Verify())

	// the median of 1..15 becomes the root
	require.Equal(t, 8, tree.root.key)
}

func TestBalanceIdempotent(t *testing.T) {
	tree := NewOrdered[int, int]()
	for i := 30; i > 0; i-- {
		tree.Insert(i, i)
	}
	tree.Balance()
	h := tree.Height()
	first := tree.DotGraph()
	root := tree.root

	tree.Balance()
	require.Equal(t, h, tree.Height())
	require.Equal(t, first, tree.DotGraph())
	require.Same(t, root, tree.root)
}

func TestBalanceSmallTrees(t *testing.T) {
	for n := 0; n < 3; n++ {
		tree := NewOrdered[int, int]()
		for i := 0; i < n; i++ {
			tree.Insert(i, i)
		}
		root := tree.root
		tree.Balance()
		require.Same(t, root, tree.root)
		require.Equal(t, n, tree.Size())
	}
}

func TestBalanceShapes(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{3, 4, 5, 6, 7, 10, 31, 32, 33, 100, 1000} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			tree := NewOrdered[int, int]()
			for _, k := range rng.Perm(n) {
				tree.Insert(k, -k)
			}
			before := collect(tree)
			tree.Balance()
			require.Equal(t, MinHeight(n), tree.Height())
			require.Equal(t, before, collect(tree))
			require.NoError(t, tree.Verify())
		})
	}
}

func TestBalanceKeepsComparator(t *testing.T) {
	tree := New[int, int](func(a, b int) bool { return a > b })
	for i := 0; i < 10; i++ {
		tree.Insert(i, i)
	}
	tree.Balance()
	require.NoError(t, tree.Verify())
	k, _, _ := tree.Min()
	require.Equal(t, 9, k)
	_, inserted := tree.Insert(10, 10)
	require.True(t, inserted)
	k, _, _ = tree.Min()
	require.Equal(t, 10, k)
}
