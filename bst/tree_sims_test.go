package bst

import (
	"slices"
	"testing"

	"github.com/google/btree"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/maps"
	"pgregory.net/rapid"
)

func TestTreeSims(t *testing.T) {
	rapid.Check(t, testTreeSims)
}

func FuzzTree(f *testing.F) {
	f.Fuzz(rapid.MakeFuzz(testTreeSims))
}

type entry struct {
	key, value int
}

func testTreeSims(t *rapid.T) {
	sim := &SimMachine{
		tree:   NewOrdered[int, int](),
		oracle: btree.NewG[entry](8, func(a, b entry) bool { return a.key < b.key }),
		known:  map[int]struct{}{},
	}
	t.Repeat(map[string]func(*rapid.T){
		"":               sim.Check,
		"Insert":         sim.Insert,
		"InsertOrAssign": sim.InsertOrAssign,
		"At":             sim.At,
		"Erase":          sim.Erase,
		"Balance":        sim.Balance,
		"Clone":          sim.Clone,
		"Move":           sim.Move,
		"Clear":          sim.Clear,
	})
}

// SimMachine drives a Tree and a google/btree with the same operations and
// checks that they agree after every step.
type SimMachine struct {
	tree   *Tree[int, int]
	oracle *btree.BTreeG[entry]
	// known holds every key ever used, so that lookups hit existing keys often
	known map[int]struct{}
}

func (s *SimMachine) Check(t *rapid.T) {
	require.NoError(t, s.tree.Verify())
	require.Equal(t, s.oracle.Len(), s.tree.Size())

	var want []entry
	s.oracle.Ascend(func(e entry) bool {
		want = append(want, e)
		return true
	})
	var got []entry
	for it := s.tree.Begin(); !it.IsEnd(); it.Next() {
		k, v, err := it.Pair()
		require.NoError(t, err)
		got = append(got, entry{k, *v})
	}
	require.Equal(t, want, got)
}

func (s *SimMachine) selectKey(t *rapid.T) int {
	if len(s.known) > 0 && rapid.Bool().Draw(t, "existingKey") {
		keys := maps.Keys(s.known)
		slices.Sort(keys)
		return rapid.SampledFrom(keys).Draw(t, "key")
	}
	k := rapid.IntRange(-1000, 1000).Draw(t, "key")
	s.known[k] = struct{}{}
	return k
}

func (s *SimMachine) Insert(t *rapid.T) {
	n := rapid.IntRange(1, 50).Draw(t, "n")
	for i := 0; i < n; i++ {
		key := s.selectKey(t)
		value := rapid.Int().Draw(t, "value")
		_, exists := s.oracle.Get(entry{key: key})
		it, inserted := s.tree.Insert(key, value)
		require.Equal(t, !exists, inserted)
		if inserted {
			s.oracle.ReplaceOrInsert(entry{key, value})
		}
		k, err := it.Key()
		require.NoError(t, err)
		require.Equal(t, key, k)
	}
}

func (s *SimMachine) InsertOrAssign(t *rapid.T) {
	key := s.selectKey(t)
	value := rapid.Int().Draw(t, "value")
	_, existed := s.oracle.ReplaceOrInsert(entry{key, value})
	_, created := s.tree.InsertOrAssign(key, value)
	require.Equal(t, !existed, created)
}

func (s *SimMachine) At(t *rapid.T) {
	key := s.selectKey(t)
	want, ok := s.oracle.Get(entry{key: key})
	p := s.tree.At(key)
	if ok {
		require.Equal(t, want.value, *p)
	} else {
		require.Zero(t, *p)
	}
	*p++
	s.oracle.ReplaceOrInsert(entry{key, *p})
}

func (s *SimMachine) Erase(t *rapid.T) {
	n := rapid.IntRange(1, 20).Draw(t, "n")
	for i := 0; i < n; i++ {
		key := s.selectKey(t)
		_, existed := s.oracle.Delete(entry{key: key})
		require.Equal(t, existed, s.tree.Erase(key))
		require.True(t, s.tree.Find(key).IsEnd())
	}
}

func (s *SimMachine) Balance(t *rapid.T) {
	s.tree.Balance()
	if s.tree.Size() >= 3 {
		require.True(t, s.tree.IsBalanced())
	}
}

func (s *SimMachine) Clone(t *rapid.T) {
	cp := s.tree.Clone()
	require.NoError(t, cp.Verify())
	// mutations of the copy never show through
	for k := range s.tree.Keys() {
		*cp.At(k) = ^*cp.At(k)
	}
	cp.Insert(5000, 1)
	if rapid.Bool().Draw(t, "keepClone") {
		// continue with the copy, restoring the values
		for k := range cp.Keys() {
			*cp.At(k) = ^*cp.At(k)
		}
		cp.Erase(5000)
		s.tree = cp
	}
}

func (s *SimMachine) Move(t *rapid.T) {
	dst := NewOrdered[int, int]()
	dst.Insert(rapid.Int().Draw(t, "junk"), 0)
	dst.MoveFrom(s.tree)
	require.Equal(t, 0, s.tree.Size())
	require.Equal(t, -1, s.tree.Height())
	s.tree = dst
}

func (s *SimMachine) Clear(t *rapid.T) {
	if !rapid.Bool().Draw(t, "clear") {
		return
	}
	s.tree.Clear()
	s.oracle.Clear(false)
}
