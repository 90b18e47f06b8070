package bench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunTrial(t *testing.T) {
	keys := RandomKeys(64, NewRand(7))
	eraseOrder := RandomKeys(64, NewRand(8))

	for impl, load := range Loaders {
		for _, op := range AllOps {
			d, tree, err := runTrial(op, load, keys, eraseOrder)
			require.NoError(t, err, "%s %s", impl, op)
			require.GreaterOrEqual(t, d, time.Duration(0))
			require.NoError(t, tree.Verify(), "%s %s", impl, op)

			switch op {
			case OpClear, OpErase:
				require.Equal(t, 0, tree.Size(), "%s %s", impl, op)
				require.Equal(t, -1, tree.Height(), "%s %s", impl, op)
			default:
				require.Equal(t, 64, tree.Size(), "%s %s", impl, op)
			}
		}
	}
}

func TestRunTrialBalance(t *testing.T) {
	keys, err := Ascending.Keys(63, nil)
	require.NoError(t, err)
	_, tree, err := runTrial(OpBalance, NewBSTTree, keys, nil)
	require.NoError(t, err)
	require.Equal(t, 5, tree.Height())

	_, tree, err = runTrial(OpBuild, NewBSTTree, keys, nil)
	require.NoError(t, err)
	require.Equal(t, 62, tree.Height())
}

func TestRunTrialMoveLeavesSourceEmpty(t *testing.T) {
	for impl, load := range Loaders {
		src := build(load, []int{3, 1, 2})
		dst := src.Move()
		require.Equal(t, 0, src.Size(), impl)
		require.Equal(t, 3, dst.Size(), impl)
	}
}

func TestAccessCreatesMissing(t *testing.T) {
	for impl, load := range Loaders {
		tree := build(load, []int{1, 2})
		require.Equal(t, 2.0, tree.Access(2), impl)
		require.Zero(t, tree.Access(5), impl)
		require.Equal(t, 3, tree.Size(), impl)
	}
}

func TestUnknownImpl(t *testing.T) {
	_, err := LoaderFor("skiplist")
	require.Error(t, err)
}

func TestStats(t *testing.T) {
	var s Stats
	require.Zero(t, s.Avg())
	for _, d := range []time.Duration{3, 1, 5} {
		s.Add(d)
	}
	require.Equal(t, 3, s.Trials)
	require.Equal(t, time.Duration(3), s.Avg())
	require.Equal(t, time.Duration(5), s.Worst)
	require.Equal(t, time.Duration(1), s.Best)
}
