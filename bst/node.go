package bst

type node[K, V any] struct {
	key   K
	value V

	parent *node[K, V]
	left   *node[K, V]
	right  *node[K, V]

	// detached is set once the node has left its tree.
	detached bool
}

func newNode[K, V any](key K, value V) *node[K, V] {
	return &node[K, V]{key: key, value: value}
}

func (n *node[K, V]) leftmost() *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[K, V]) rightmost() *node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// next returns the in-order successor of n, or nil if n is the last node.
// A nil receiver stays nil.
func (n *node[K, V]) next() *node[K, V] {
	if n == nil {
		return nil
	}
	if n.right != nil {
		return n.right.leftmost()
	}
	cur := n
	for cur.parent != nil && cur != cur.parent.left {
		cur = cur.parent
	}
	return cur.parent
}

func (n *node[K, V]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// childSlot returns the link in the parent (or the tree root) that points at n.
func (n *node[K, V]) childSlot(root **node[K, V]) **node[K, V] {
	if n.parent == nil {
		return root
	}
	if n.parent.left == n {
		return &n.parent.left
	}
	return &n.parent.right
}

// detach unlinks n from its neighbours and marks it as no longer part of a tree.
func (n *node[K, V]) detach() {
	n.parent = nil
	n.left = nil
	n.right = nil
	n.detached = true
}

// teardown detaches every node of the subtree rooted at n. Children are
// queued before their parent is unlinked, so no recursion is needed.
func teardown[K, V any](n *node[K, V]) {
	if n == nil {
		return
	}
	stack := []*node[K, V]{n}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.left != nil {
			stack = append(stack, top.left)
		}
		if top.right != nil {
			stack = append(stack, top.right)
		}
		top.detach()
	}
}

// cloneSubtree deep-copies the subtree rooted at src. The copy shares no nodes with src.
func cloneSubtree[K, V any](src *node[K, V]) *node[K, V] {
	if src == nil {
		return nil
	}
	type pair struct {
		from, to *node[K, V]
	}
	root := newNode(src.key, src.value)
	stack := []pair{{src, root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.from.left != nil {
			c := newNode(p.from.left.key, p.from.left.value)
			c.parent = p.to
			p.to.left = c
			stack = append(stack, pair{p.from.left, c})
		}
		if p.from.right != nil {
			c := newNode(p.from.right.key, p.from.right.value)
			c.parent = p.to
			p.to.right = c
			stack = append(stack, pair{p.from.right, c})
		}
	}
	return root
}

// subtreeHeight returns the longest edge path below n; -1 for a nil subtree.
func subtreeHeight[K, V any](n *node[K, V]) int {
	if n == nil {
		return -1
	}
	type frame struct {
		n     *node[K, V]
		depth int
	}
	height := 0
	stack := []frame{{n, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > height {
			height = f.depth
		}
		if f.n.left != nil {
			stack = append(stack, frame{f.n.left, f.depth + 1})
		}
		if f.n.right != nil {
			stack = append(stack, frame{f.n.right, f.depth + 1})
		}
	}
	return height
}
