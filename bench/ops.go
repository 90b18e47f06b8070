package bench

import (
	"fmt"
	"time"
)

// Op is one measured tree operation.
type Op string

const (
	OpBuild     Op = "build"
	OpCopy      Op = "copy"
	OpMove      Op = "move"
	OpBalance   Op = "balance"
	OpTraversal Op = "traversal"
	OpAccess    Op = "access"
	OpClear     Op = "clear"
	OpErase     Op = "erase"
)

var AllOps = []Op{OpBuild, OpCopy, OpMove, OpBalance, OpTraversal, OpAccess, OpClear, OpErase}

// Title is the heading printed above the op's table.
func (o Op) Title() string {
	switch o {
	case OpBuild:
		return "Build test"
	case OpCopy:
		return "Copy test"
	case OpMove:
		return "Move test"
	case OpBalance:
		return "Balance test"
	case OpTraversal:
		return "Traversal test"
	case OpAccess:
		return "Arbitrary access test"
	case OpClear:
		return "Clear test"
	case OpErase:
		return "Arbitrary erase test"
	default:
		return string(o)
	}
}

func ParseOps(names []string) ([]Op, error) {
	ops := make([]Op, 0, len(names))
	for _, name := range names {
		op := Op(name)
		switch op {
		case OpBuild, OpCopy, OpMove, OpBalance, OpTraversal, OpAccess, OpClear, OpErase:
			ops = append(ops, op)
		default:
			return nil, fmt.Errorf("unknown op %q", name)
		}
	}
	return ops, nil
}

func build(load TreeLoader, keys []int) Tree {
	tree := load()
	for _, k := range keys {
		tree.Insert(k, float64(k))
	}
	return tree
}

// runTrial builds a fresh tree from keys and times op on it. Only the op
// itself is timed, except for OpBuild where building is the op. The returned
// tree is the one left after the op.
func runTrial(op Op, load TreeLoader, keys, eraseOrder []int) (time.Duration, Tree, error) {
	if op == OpBuild {
		start := time.Now()
		tree := build(load, keys)
		return time.Since(start), tree, nil
	}

	tree := build(load, keys)
	start := time.Now()
	switch op {
	case OpCopy:
		cp := tree.Clone()
		return time.Since(start), cp, nil
	case OpMove:
		moved := tree.Move()
		return time.Since(start), moved, nil
	case OpBalance:
		tree.Balance()
	case OpTraversal:
		n := tree.Traverse()
		d := time.Since(start)
		if n != len(keys) {
			return d, tree, fmt.Errorf("traversal visited %d of %d entries", n, len(keys))
		}
		return d, tree, nil
	case OpAccess:
		for k := 1; k <= len(keys); k++ {
			tree.Access(k)
		}
	case OpClear:
		tree.Clear()
	case OpErase:
		for _, k := range eraseOrder {
			tree.Erase(k)
		}
	default:
		return 0, nil, fmt.Errorf("unknown op %q", op)
	}
	return time.Since(start), tree, nil
}

// Stats accumulates trial durations.
type Stats struct {
	Trials int
	Total  time.Duration
	Worst  time.Duration
	Best   time.Duration
}

func (s *Stats) Add(d time.Duration) {
	if s.Trials == 0 || d < s.Best {
		s.Best = d
	}
	if d > s.Worst {
		s.Worst = d
	}
	s.Total += d
	s.Trials++
}

func (s Stats) Avg() time.Duration {
	if s.Trials == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Trials)
}
