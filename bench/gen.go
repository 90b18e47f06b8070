package bench

import (
	"fmt"
	"math/rand/v2"
)

// Order is the sequence in which keys 1..N are inserted when a tree is built.
type Order string

const (
	Ascending  Order = "asc"
	Descending Order = "desc"
	Random     Order = "rnd"
)

var AllOrders = []Order{Ascending, Descending, Random}

// Label is the name used in the report table.
func (o Order) Label() string {
	switch o {
	case Ascending:
		return "1->N"
	case Descending:
		return "N->1"
	default:
		return string(o)
	}
}

// Keys returns a permutation of 1..n. Only Random draws from rng.
func (o Order) Keys(n int, rng *rand.Rand) ([]int, error) {
	keys := make([]int, n)
	switch o {
	case Ascending:
		for i := range keys {
			keys[i] = i + 1
		}
	case Descending:
		for i := range keys {
			keys[i] = n - i
		}
	case Random:
		return RandomKeys(n, rng), nil
	default:
		return nil, fmt.Errorf("unknown order %q", o)
	}
	return keys, nil
}

// RandomKeys returns a shuffled permutation of 1..n.
func RandomKeys(n int, rng *rand.Rand) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i + 1
	}
	rng.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
	return keys
}

func ParseOrders(names []string) ([]Order, error) {
	orders := make([]Order, 0, len(names))
	for _, name := range names {
		o := Order(name)
		switch o {
		case Ascending, Descending, Random:
			orders = append(orders, o)
		default:
			return nil, fmt.Errorf("unknown order %q", name)
		}
	}
	return orders, nil
}

// NewRand returns the deterministic source shared by a sweep.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Sizes returns base, 2*base, 4*base, ... up to and including max.
func Sizes(base, max int) []int {
	var sizes []int
	if base <= 0 {
		return sizes
	}
	for n := base; n <= max; n <<= 1 {
		sizes = append(sizes, n)
		if n > max>>1 {
			break
		}
	}
	return sizes
}
