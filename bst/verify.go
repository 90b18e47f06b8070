package bst

import "fmt"

// Verify checks the ordering, parent links and the size and height counters
// against the actual node graph. The error wraps ErrCorrupt.
func (t *Tree[K, V]) Verify() error {
	if t.root == nil {
		if t.size != 0 || t.height != -1 {
			return fmt.Errorf("%w: empty tree with size %d height %d", ErrCorrupt, t.size, t.height)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrCorrupt)
	}

	type frame struct {
		n     *node[K, V]
		depth int
	}
	count, height := 0, 0
	stack := []frame{{t.root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := f.n
		count++
		if f.depth > height {
			height = f.depth
		}
		if n.detached {
			return fmt.Errorf("%w: detached node %v reachable", ErrCorrupt, n.key)
		}
		if n.left != nil {
			if n.left.parent != n {
				return fmt.Errorf("%w: bad parent link below %v", ErrCorrupt, n.key)
			}
			stack = append(stack, frame{n.left, f.depth + 1})
		}
		if n.right != nil {
			if n.right.parent != n {
				return fmt.Errorf("%w: bad parent link below %v", ErrCorrupt, n.key)
			}
			stack = append(stack, frame{n.right, f.depth + 1})
		}
	}

	// in-order keys must be strictly increasing; this covers the subtree bounds
	prev := t.root.leftmost()
	for n := prev.next(); n != nil; prev, n = n, n.next() {
		if !t.less(prev.key, n.key) {
			return fmt.Errorf("%w: %v not before %v", ErrCorrupt, prev.key, n.key)
		}
	}

	if count != t.size {
		return fmt.Errorf("%w: size %d, counted %d", ErrCorrupt, t.size, count)
	}
	if height != t.height {
		return fmt.Errorf("%w: height %d, measured %d", ErrCorrupt, t.height, height)
	}
	return nil
}
