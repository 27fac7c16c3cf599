package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/ordtrees"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

var traceLevels = map[string]tracing.TraceLevel{
	"error": tracing.LevelError,
	"info":  tracing.LevelInfo,
	"debug": tracing.LevelDebug,
}

func newRootCmd() *cobra.Command {
	var level string
	root := &cobra.Command{
		Use:           "treebench",
		Short:         "Build, inspect and compare ordered tree engines",
		Long:          "Treebench inserts random keys into binary search, AVL, red-black and B-trees, measures them and checks their invariants.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, ok := traceLevels[strings.ToLower(level)]
			if !ok {
				return fmt.Errorf("%w: trace level %q", ordtrees.ErrIllegalArguments, level)
			}
			gtrace.CoreTracer = gologadapter.New()
			gtrace.CoreTracer.SetTraceLevel(l)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&level, "trace", "error", "trace level (error, info, debug)")
	root.AddCommand(newRunCmd(), newShowCmd(), newCheckCmd())
	return root
}

// keyFlags are shared by all commands which generate random keys.
type keyFlags struct {
	count  int
	max    int
	seed   int64
	degree int
}

func (kf *keyFlags) register(cmd *cobra.Command, count int) {
	cmd.Flags().IntVar(&kf.count, "count", count, "number of random keys to insert")
	cmd.Flags().IntVar(&kf.max, "max", 10000, "keys are drawn from [1, max]")
	cmd.Flags().Int64Var(&kf.seed, "seed", 1, "seed for random keys")
	cmd.Flags().IntVar(&kf.degree, "degree", 0, "B-tree minimum degree (0 for default)")
}
