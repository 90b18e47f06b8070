package bst

// Insert adds key with value unless key is already present. It returns an
// iterator to the entry holding key and whether a new entry was created.
// A duplicate key leaves the tree unchanged.
func (t *Tree[K, V]) Insert(key K, value V) (Iterator[K, V], bool) {
	found, parent, depth := t.search(key)
	if found != nil {
		return Iterator[K, V]{n: found}, false
	}
	return Iterator[K, V]{n: t.attach(parent, depth, newNode(key, value))}, true
}

// Emplace is Insert with the value built by ctor. ctor only runs when key is
// absent; a nil ctor stores the zero value.
func (t *Tree[K, V]) Emplace(key K, ctor func() V) (Iterator[K, V], bool) {
	found, parent, depth := t.search(key)
	if found != nil {
		return Iterator[K, V]{n: found}, false
	}
	var value V
	if ctor != nil {
		value = ctor()
	}
	return Iterator[K, V]{n: t.attach(parent, depth, newNode(key, value))}, true
}

// InsertOrAssign stores value at key, overwriting any existing value. The
// bool result reports whether a new entry was created.
func (t *Tree[K, V]) InsertOrAssign(key K, value V) (Iterator[K, V], bool) {
	found, parent, depth := t.search(key)
	if found != nil {
		found.value = value
		return Iterator[K, V]{n: found}, false
	}
	return Iterator[K, V]{n: t.attach(parent, depth, newNode(key, value))}, true
}

// At returns a pointer to the value stored at key, inserting the zero value
// first if key is absent. The pointer is only meaningful until the next
// Erase, Balance, Clear or reassignment of the tree.
func (t *Tree[K, V]) At(key K) *V {
	found, parent, depth := t.search(key)
	if found == nil {
		var zero V
		found = t.attach(parent, depth, newNode(key, zero))
	}
	return &found.value
}

// attach links a fully built node under parent. Height can only grow here,
// so it is updated from the new node's depth without a walk.
func (t *Tree[K, V]) attach(parent *node[K, V], depth int, n *node[K, V]) *node[K, V] {
	if parent == nil {
		t.root = n
	} else {
		n.parent = parent
		if t.less(n.key, parent.key) {
			parent.left = n
		} else {
			parent.right = n
		}
	}
	t.size++
	if depth > t.height {
		t.height = depth
	}
	return n
}

// Erase removes key and reports whether it was present.
//
// A node with two children is not unlinked: it takes over its successor's
// key and value and the successor is removed instead. Iterators on the
// erased key's node therefore stay valid in that case and observe the
// successor's entry; iterators on the removed successor become invalid.
func (t *Tree[K, V]) Erase(key K) bool {
	n, _, _ := t.search(key)
	if n == nil {
		return false
	}
	t.eraseNode(n)
	t.size--
	t.height = subtreeHeight(t.root)
	return true
}

func (t *Tree[K, V]) eraseNode(n *node[K, V]) {
	for {
		slot := n.childSlot(&t.root)
		switch {
		case n.isLeaf():
			*slot = nil
		case n.left != nil && n.right != nil:
			succ := n.right.leftmost()
			n.key, n.value = succ.key, succ.value
			// succ has no left child, so the next round ends in one of the other cases
			n = succ
			continue
		default:
			child := n.left
			if child == nil {
				child = n.right
			}
			child.parent = n.parent
			*slot = child
		}
		n.detach()
		return
	}
}
