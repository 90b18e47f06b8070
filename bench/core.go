package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/kocubinski/bstree/bench/metrics"
)

// Context carries everything a sweep needs. Metrics may be nil.
type Context struct {
	context.Context

	Log     zerolog.Logger
	Config  Config
	Metrics *metrics.Metrics
}

// Result is one row of the report: an op measured at one size and order.
type Result struct {
	Impl   string        `json:"impl"`
	Op     Op            `json:"op"`
	Order  Order         `json:"order"`
	N      int           `json:"n"`
	Trials int           `json:"trials"`
	Avg    time.Duration `json:"avg_ns"`
	Worst  time.Duration `json:"worst_ns"`
	Best   time.Duration `json:"best_ns"`
	// Size and Height describe the tree left by the last trial.
	Size   int `json:"size"`
	Height int `json:"height"`
}

// Sweep measures every configured op for sizes base-n, 2*base-n, ... max-n
// and every insertion order. Random orders draw a fresh permutation per
// trial; the erase order is drawn once per size and shared by all orders.
func (c *Context) Sweep(load TreeLoader) ([]Result, error) {
	orders, err := ParseOrders(c.Config.Orders)
	if err != nil {
		return nil, err
	}
	ops, err := ParseOps(c.Config.Ops)
	if err != nil {
		return nil, err
	}
	sizes := Sizes(c.Config.BaseN, c.Config.MaxN)
	rng := NewRand(c.Config.Seed)

	var results []Result
	for _, op := range ops {
		c.Log.Info().Str("op", string(op)).Msg(op.Title())
		for _, n := range sizes {
			eraseOrder := RandomKeys(n, rng)
			for _, order := range orders {
				res, err := c.measure(load, op, order, n, eraseOrder)
				if err != nil {
					return results, err
				}
				results = append(results, res)
			}
		}
	}
	return results, nil
}

func (c *Context) measure(load TreeLoader, op Op, order Order, n int, eraseOrder []int) (Result, error) {
	rng := NewRand(c.Config.Seed + uint64(n))
	var (
		stats Stats
		last  Tree
	)
	for trial := 0; trial < c.Config.Trials; trial++ {
		if err := c.Err(); err != nil {
			return Result{}, err
		}
		keys, err := order.Keys(n, rng)
		if err != nil {
			return Result{}, err
		}
		d, tree, err := runTrial(op, load, keys, eraseOrder)
		if err != nil {
			return Result{}, fmt.Errorf("%s %s n=%d trial %d: %w", op, order, n, trial, err)
		}
		if c.Config.Verify {
			if err := tree.Verify(); err != nil {
				return Result{}, fmt.Errorf("%s %s n=%d trial %d: %w", op, order, n, trial, err)
			}
		}
		stats.Add(d)
		last = tree
		if c.Metrics != nil {
			c.Metrics.ObserveTrial(string(op), string(order), d, n)
		}
	}

	res := Result{
		Impl:   c.Config.Impl,
		Op:     op,
		Order:  order,
		N:      n,
		Trials: stats.Trials,
		Avg:    stats.Avg(),
		Worst:  stats.Worst,
		Best:   stats.Best,
		Size:   last.Size(),
		Height: last.Height(),
	}
	if c.Metrics != nil {
		c.Metrics.SetTree(res.Size, res.Height)
	}
	c.Log.Debug().
		Str("op", string(op)).
		Str("order", order.Label()).
		Str("n", humanize.Comma(int64(n))).
		Dur("avg", res.Avg).
		Dur("worst", res.Worst).
		Dur("best", res.Best).
		Msg("measured")
	return res, nil
}
