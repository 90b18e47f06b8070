package bench_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kocubinski/bstree/bench"
)

func Test_OrderKeys(t *testing.T) {
	rng := bench.NewRand(1)

	asc, err := bench.Ascending.Keys(5, rng)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5}, asc)

	desc, err := bench.Descending.Keys(5, rng)
	require.NoError(t, err)
	require.Equal(t, []int{5, 4, 3, 2, 1}, desc)

	rnd, err := bench.Random.Keys(100, rng)
	require.NoError(t, err)
	sorted := slices.Clone(rnd)
	slices.Sort(sorted)
	want := make([]int, 100)
	for i := range want {
		want[i] = i + 1
	}
	require.Equal(t, want, sorted)
	require.NotEqual(t, want, rnd)

	_, err = bench.Order("zigzag").Keys(5, rng)
	require.Error(t, err)
}

func Test_RandomKeys_Determinism(t *testing.T) {
	a := bench.RandomKeys(1000, bench.NewRand(42))
	b := bench.RandomKeys(1000, bench.NewRand(42))
	c := bench.RandomKeys(1000, bench.NewRand(43))
	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
}

func Test_Sizes(t *testing.T) {
	require.Equal(t, []int{16, 32, 64}, bench.Sizes(16, 64))
	require.Equal(t, []int{16, 32}, bench.Sizes(16, 63))
	require.Equal(t, []int{5}, bench.Sizes(5, 5))
	require.Empty(t, bench.Sizes(8, 4))
	require.Empty(t, bench.Sizes(0, 64))

	const maxInt = int(^uint(0) >> 1)
	sizes := bench.Sizes(1<<60, maxInt)
	require.Equal(t, []int{1 << 60, 1 << 61, 1 << 62}, sizes)
}

func Test_Labels(t *testing.T) {
	require.Equal(t, "1->N", bench.Ascending.Label())
	require.Equal(t, "N->1", bench.Descending.Label())
	require.Equal(t, "rnd", bench.Random.Label())
	require.Equal(t, "Arbitrary erase test", bench.OpErase.Title())
	require.Equal(t, "Build test", bench.OpBuild.Title())
}

func Test_Parse(t *testing.T) {
	orders, err := bench.ParseOrders([]string{"rnd", "asc"})
	require.NoError(t, err)
	require.Equal(t, []bench.Order{bench.Random, bench.Ascending}, orders)
	_, err = bench.ParseOrders([]string{"up"})
	require.Error(t, err)

	ops, err := bench.ParseOps([]string{"erase", "copy"})
	require.NoError(t, err)
	require.Equal(t, []bench.Op{bench.OpErase, bench.OpCopy}, ops)
	_, err = bench.ParseOps([]string{"sort"})
	require.Error(t, err)
}
