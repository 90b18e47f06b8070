package bst

// Iterator is a position in a Tree: either an entry or the end sentinel.
// The zero Iterator is the end sentinel. Iterators hold no ownership and
// compare by node identity.
type Iterator[K, V any] struct {
	n *node[K, V]
}

// Next advances it to the following entry and returns the new position.
// Advancing the end iterator leaves it at the end.
func (it *Iterator[K, V]) Next() Iterator[K, V] {
	it.n = it.n.next()
	return *it
}

// PostNext advances it and returns the position it had before the call.
func (it *Iterator[K, V]) PostNext() Iterator[K, V] {
	prev := *it
	it.n = it.n.next()
	return prev
}

func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.n == other.n
}

// IsEnd reports whether it is the end sentinel.
func (it Iterator[K, V]) IsEnd() bool {
	return it.n == nil
}

// Valid reports whether it can be dereferenced.
func (it Iterator[K, V]) Valid() bool {
	return it.n != nil && !it.n.detached
}

func (it Iterator[K, V]) check() error {
	if it.n == nil {
		return ErrOutOfRange
	}
	if it.n.detached {
		return ErrInvalidIterator
	}
	return nil
}

func (it Iterator[K, V]) Key() (K, error) {
	if err := it.check(); err != nil {
		var zero K
		return zero, err
	}
	return it.n.key, nil
}

// Value returns a pointer to the entry's value, which may be written through.
func (it Iterator[K, V]) Value() (*V, error) {
	if err := it.check(); err != nil {
		return nil, err
	}
	return &it.n.value, nil
}

func (it Iterator[K, V]) Pair() (K, *V, error) {
	if err := it.check(); err != nil {
		var zero K
		return zero, nil, err
	}
	return it.n.key, &it.n.value, nil
}
