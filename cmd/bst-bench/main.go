package main

import "github.com/kocubinski/bstree/bench"

func main() {
	bench.Run(bench.RunConfig{
		Use:   "bst-bench",
		Short: "Times build, copy, move, balance, traversal, access, clear and erase over growing trees.",
	})
}
