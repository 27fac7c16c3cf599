package main

import (
	"fmt"

	"github.com/npillmayer/ordtrees"
	"github.com/npillmayer/ordtrees/bench"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	kf := &keyFlags{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Build every engine from random keys and validate its invariants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			keys, err := bench.Keys(kf.seed, kf.count, kf.max)
			if err != nil {
				return err
			}
			failed := 0
			for _, kind := range ordtrees.Kinds() {
				engine, added, err := ordtrees.Build(ordtrees.Config{Kind: kind, MinDegree: kf.degree}, keys...)
				if err != nil {
					return err
				}
				kindColor.Fprintf(out, "%-6s", kind)
				fmt.Fprintf(out, " keys=%-6d height=%-3d ", added, engine.Height())
				if err := engine.Check(); err != nil {
					failed++
					failColor.Fprintln(out, err.Error())
					continue
				}
				okColor.Fprintln(out, "ok")
			}
			if failed > 0 {
				return fmt.Errorf("%d engine(s) failed their invariant check", failed)
			}
			return nil
		},
	}
	kf.register(cmd, bench.DefaultCount)
	return cmd
}
