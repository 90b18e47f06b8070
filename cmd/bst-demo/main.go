package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kocubinski/bstree/demo"
)

func main() {
	var (
		size  int
		seed  uint64
		empty string
	)
	cmd := &cobra.Command{
		Use:          "bst-demo",
		Short:        "Interactive prompt to build, query and reshape a binary search tree.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}
	cmd.Flags().IntVar(&size, "size", 7, "Size of the initial random tree.")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for random trees. Defaults to the current time.")
	cmd.Flags().StringVar(&empty, "empty", ".", "Placeholder drawn for missing children.")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("seed") {
			seed = uint64(time.Now().UnixNano())
		}
		s := demo.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), seed, empty)
		return s.Run(size)
	}
	if err := cmd.Execute(); err != nil {
		slog.Error("error running demo", "error", err)
		os.Exit(1)
	}
}
