package bst

import "math/bits"

// MinHeight is the smallest height a binary tree of n nodes can have,
// ceil(log2(n+1)) - 1.
func MinHeight(n int) int {
	if n <= 0 {
		return -1
	}
	return bits.Len(uint(n)) - 1
}

// IsBalanced reports whether the tree already has minimal height.
func (t *Tree[K, V]) IsBalanced() bool {
	return t.height == MinHeight(t.size)
}

// Balance rebuilds the tree with minimal height, keeping its content.
// Trees of fewer than three entries and trees that are already minimal are
// left alone. The rebuilt tree replaces the old one only once it is
// complete; every iterator into the old tree becomes invalid.
func (t *Tree[K, V]) Balance() {
	if t.size < 3 || t.IsBalanced() {
		return
	}

	sorted := make([]*node[K, V], 0, t.size)
	for n := t.root.leftmost(); n != nil; n = n.next() {
		sorted = append(sorted, n)
	}

	balanced := New[K, V](t.less)
	type span struct{ lo, hi int }
	stack := []span{{0, len(sorted) - 1}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.hi < s.lo {
			continue
		}
		mid := s.lo + (s.hi-s.lo)/2
		balanced.Insert(sorted[mid].key, sorted[mid].value)
		// right pushed first so the left half is inserted first
		stack = append(stack, span{mid + 1, s.hi}, span{s.lo, mid - 1})
	}

	t.MoveFrom(balanced)
}
