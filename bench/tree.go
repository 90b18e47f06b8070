package bench

import (
	"fmt"

	gbtree "github.com/google/btree"
	tbtree "github.com/tidwall/btree"

	"github.com/kocubinski/bstree/bst"
)

// Tree is the interface the harness measures. Keys are ints, values float64.
type Tree interface {
	// Insert adds a new entry and reports whether the key was absent.
	Insert(key int, value float64) bool
	// Access reads the value at key, creating a zero entry when it is missing.
	Access(key int) float64
	Erase(key int) bool
	// Clone returns an independent deep copy.
	Clone() Tree
	// Move returns a tree that took over the content; the receiver is left empty.
	Move() Tree
	Balance()
	// Traverse visits every entry in key order and returns how many it saw.
	Traverse() int
	Clear()
	Size() int
	// Height returns -1 for an empty tree and for implementations that do not track it.
	Height() int
	Verify() error
}

// TreeLoader creates an empty tree.
type TreeLoader func() Tree

// Loaders lists the implementations selectable with --impl.
var Loaders = map[string]TreeLoader{
	"bst":     NewBSTTree,
	"btree":   NewGoogleBTree,
	"tidwall": NewTidwallBTree,
}

func LoaderFor(impl string) (TreeLoader, error) {
	loader, ok := Loaders[impl]
	if !ok {
		return nil, fmt.Errorf("unknown tree implementation %q", impl)
	}
	return loader, nil
}

type bstTree struct {
	t *bst.Tree[int, float64]
}

func NewBSTTree() Tree {
	return &bstTree{t: bst.NewOrdered[int, float64]()}
}

func (b *bstTree) Insert(key int, value float64) bool {
	_, ok := b.t.Insert(key, value)
	return ok
}

func (b *bstTree) Access(key int) float64 { return *b.t.At(key) }

func (b *bstTree) Erase(key int) bool { return b.t.Erase(key) }

func (b *bstTree) Clone() Tree { return &bstTree{t: b.t.Clone()} }

func (b *bstTree) Move() Tree {
	dst := bst.NewOrdered[int, float64]()
	dst.MoveFrom(b.t)
	return &bstTree{t: dst}
}

func (b *bstTree) Balance() { b.t.Balance() }

func (b *bstTree) Traverse() int {
	n := 0
	for it := b.t.Begin(); !it.IsEnd(); it.Next() {
		n++
	}
	return n
}

func (b *bstTree) Clear() { b.t.Clear() }

func (b *bstTree) Size() int { return b.t.Size() }

func (b *bstTree) Height() int { return b.t.Height() }

func (b *bstTree) Verify() error { return b.t.Verify() }

type item struct {
	key   int
	value float64
}

func itemLess(a, b item) bool { return a.key < b.key }

const googleBTreeDegree = 32

// googleBTree is a self-balancing baseline; Balance is a no-op.
type googleBTree struct {
	t *gbtree.BTreeG[item]
}

func NewGoogleBTree() Tree {
	return &googleBTree{t: gbtree.NewG[item](googleBTreeDegree, itemLess)}
}

func (g *googleBTree) Insert(key int, value float64) bool {
	if g.t.Has(item{key: key}) {
		return false
	}
	g.t.ReplaceOrInsert(item{key, value})
	return true
}

func (g *googleBTree) Access(key int) float64 {
	it, ok := g.t.Get(item{key: key})
	if !ok {
		g.t.ReplaceOrInsert(item{key: key})
	}
	return it.value
}

func (g *googleBTree) Erase(key int) bool {
	_, ok := g.t.Delete(item{key: key})
	return ok
}

func (g *googleBTree) Clone() Tree { return &googleBTree{t: g.t.Clone()} }

func (g *googleBTree) Move() Tree {
	moved := &googleBTree{t: g.t}
	g.t = gbtree.NewG[item](googleBTreeDegree, itemLess)
	return moved
}

func (g *googleBTree) Balance() {}

func (g *googleBTree) Traverse() int {
	n := 0
	g.t.Ascend(func(item) bool {
		n++
		return true
	})
	return n
}

func (g *googleBTree) Clear() { g.t.Clear(false) }

func (g *googleBTree) Size() int { return g.t.Len() }

func (g *googleBTree) Height() int { return -1 }

func (g *googleBTree) Verify() error {
	prev, first := item{}, true
	var err error
	g.t.Ascend(func(it item) bool {
		if !first && !itemLess(prev, it) {
			err = fmt.Errorf("btree keys out of order: %d then %d", prev.key, it.key)
			return false
		}
		prev, first = it, false
		return true
	})
	return err
}

// tidwallBTree is the copy-on-write B-tree baseline; Balance is a no-op.
type tidwallBTree struct {
	t *tbtree.BTreeG[item]
}

func NewTidwallBTree() Tree {
	return &tidwallBTree{t: tbtree.NewBTreeG(itemLess)}
}

func (w *tidwallBTree) Insert(key int, value float64) bool {
	if _, ok := w.t.Get(item{key: key}); ok {
		return false
	}
	w.t.Set(item{key, value})
	return true
}

func (w *tidwallBTree) Access(key int) float64 {
	it, ok := w.t.Get(item{key: key})
	if !ok {
		w.t.Set(item{key: key})
	}
	return it.value
}

func (w *tidwallBTree) Erase(key int) bool {
	_, ok := w.t.Delete(item{key: key})
	return ok
}

func (w *tidwallBTree) Clone() Tree { return &tidwallBTree{t: w.t.Copy()} }

func (w *tidwallBTree) Move() Tree {
	moved := &tidwallBTree{t: w.t}
	w.t = tbtree.NewBTreeG(itemLess)
	return moved
}

func (w *tidwallBTree) Balance() {}

func (w *tidwallBTree) Traverse() int {
	n := 0
	w.t.Scan(func(item) bool {
		n++
		return true
	})
	return n
}

func (w *tidwallBTree) Clear() { w.t.Clear() }

func (w *tidwallBTree) Size() int { return w.t.Len() }

func (w *tidwallBTree) Height() int {
	if w.t.Len() == 0 {
		return -1
	}
	return w.t.Height() - 1
}

func (w *tidwallBTree) Verify() error {
	prev, first := item{}, true
	var err error
	w.t.Scan(func(it item) bool {
		if !first && !itemLess(prev, it) {
			err = fmt.Errorf("tidwall btree keys out of order: %d then %d", prev.key, it.key)
			return false
		}
		prev, first = it, false
		return true
	})
	return err
}
