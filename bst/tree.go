// Package bst implements an ordered map backed by a plain binary search tree.
//
// The tree does not rebalance itself on mutation. Balance rebuilds it into a
// minimal-height shape on demand. A Tree is not safe for concurrent use.
package bst

import (
	"errors"
	"iter"

	"golang.org/x/exp/constraints"
)

var (
	// ErrOutOfRange is returned when dereferencing the end iterator.
	ErrOutOfRange = errors.New("bst: iterator out of range")
	// ErrInvalidIterator is returned when dereferencing an iterator whose node was removed from its tree.
	ErrInvalidIterator = errors.New("bst: iterator points at a removed node")
	// ErrCorrupt is returned by Verify when a structural invariant does not hold.
	ErrCorrupt = errors.New("bst: corrupt tree")
)

// LessFunc reports whether a orders strictly before b. Two keys are equal
// when neither is less than the other.
type LessFunc[K any] func(a, b K) bool

type Tree[K, V any] struct {
	root   *node[K, V]
	less   LessFunc[K]
	size   int
	height int
}

// New returns an empty tree ordered by less.
func New[K, V any](less LessFunc[K]) *Tree[K, V] {
	if less == nil {
		panic("bst: nil LessFunc")
	}
	return &Tree[K, V]{less: less, height: -1}
}

// NewOrdered returns an empty tree ordered by the < operator.
func NewOrdered[K constraints.Ordered, V any]() *Tree[K, V] {
	return New[K, V](func(a, b K) bool { return a < b })
}

func (t *Tree[K, V]) Size() int { return t.size }

func (t *Tree[K, V]) Len() int { return t.size }

// Height is the number of edges on the longest root-to-leaf path, -1 when empty.
func (t *Tree[K, V]) Height() int { return t.height }

func (t *Tree[K, V]) Empty() bool { return t.size == 0 }

// search walks down from the root. It returns the node holding key, or nil
// together with the last visited node and the depth a new child of it would have.
func (t *Tree[K, V]) search(key K) (found, parent *node[K, V], depth int) {
	cur := t.root
	for cur != nil {
		switch {
		case t.less(key, cur.key):
			parent, cur = cur, cur.left
		case t.less(cur.key, key):
			parent, cur = cur, cur.right
		default:
			return cur, parent, depth
		}
		depth++
	}
	return nil, parent, depth
}

func (t *Tree[K, V]) Find(key K) Iterator[K, V] {
	n, _, _ := t.search(key)
	return Iterator[K, V]{n: n}
}

// Get returns the value stored at key.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	n, _, _ := t.search(key)
	if n == nil {
		var zero V
		return zero, false
	}
	return n.value, true
}

func (t *Tree[K, V]) Contains(key K) bool {
	n, _, _ := t.search(key)
	return n != nil
}

func (t *Tree[K, V]) Min() (K, V, bool) {
	if t.root == nil {
		var (
			k K
			v V
		)
		return k, v, false
	}
	n := t.root.leftmost()
	return n.key, n.value, true
}

func (t *Tree[K, V]) Max() (K, V, bool) {
	if t.root == nil {
		var (
			k K
			v V
		)
		return k, v, false
	}
	n := t.root.rightmost()
	return n.key, n.value, true
}

func (t *Tree[K, V]) Begin() Iterator[K, V] {
	if t.root == nil {
		return Iterator[K, V]{}
	}
	return Iterator[K, V]{n: t.root.leftmost()}
}

func (t *Tree[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{}
}

// All yields every entry in ascending key order.
// The tree must not be modified while ranging over it.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t.root == nil {
			return
		}
		for n := t.root.leftmost(); n != nil; n = n.next() {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Keys yields every key in ascending order.
func (t *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Clear removes every entry. Iterators into the tree become invalid.
func (t *Tree[K, V]) Clear() {
	teardown(t.root)
	t.reset()
}

func (t *Tree[K, V]) reset() {
	t.root = nil
	t.size = 0
	t.height = -1
}

// Clone returns a deep copy of t. The copy shares no nodes with t.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	return &Tree[K, V]{
		root:   cloneSubtree(t.root),
		less:   t.less,
		size:   t.size,
		height: t.height,
	}
}

// CopyFrom replaces the contents of t with a deep copy of src, including its ordering.
func (t *Tree[K, V]) CopyFrom(src *Tree[K, V]) {
	if t == src {
		return
	}
	teardown(t.root)
	t.root = cloneSubtree(src.root)
	t.less = src.less
	t.size = src.size
	t.height = src.height
}

// MoveFrom transfers the contents of src to t in constant time. src is left
// empty and usable. Nodes are heap allocated and the root is held by pointer,
// so no parent link needs fixing after the transfer.
func (t *Tree[K, V]) MoveFrom(src *Tree[K, V]) {
	if t == src {
		return
	}
	teardown(t.root)
	t.root = src.root
	t.less = src.less
	t.size = src.size
	t.height = src.height
	src.reset()
}
