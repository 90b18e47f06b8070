package bench

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
)

// WriteTable prints results grouped by op, one table per op, in the order
// they were measured. Times are in seconds. A repeated N is shown as ".
func WriteTable(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 16, 0, 0, ' ', 0)
	var (
		op    Op
		prevN int
		inOp  bool
	)
	for _, r := range results {
		if !inOp || r.Op != op {
			if inOp {
				if err := tw.Flush(); err != nil {
					return err
				}
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			op, inOp, prevN = r.Op, true, 0
			if _, err := fmt.Fprintln(w, op.Title()); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(tw, "N\tTree\tAVG\tworst\tbest\t"); err != nil {
				return err
			}
		}
		n := `"`
		if r.N != prevN {
			n = strconv.Itoa(r.N)
			prevN = r.N
		}
		_, err := fmt.Fprintf(tw, "%s\t%s\t%.9f\t%.9f\t%.9f\t\n",
			n, r.Order.Label(), r.Avg.Seconds(), r.Worst.Seconds(), r.Best.Seconds())
		if err != nil {
			return err
		}
	}
	return tw.Flush()
}
