package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/guiguan/caster"
	"github.com/npillmayer/ordtrees"
	"github.com/npillmayer/ordtrees/bench"
	"github.com/spf13/cobra"
)

type runFlags struct {
	keyFlags
	engines string
	probes  int
	csvPath string
	profile string
}

func newRunCmd() *cobra.Command {
	rf := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Measure insertion and search for a set of engines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rf.config(cmd)
			if err != nil {
				return err
			}
			return runBench(cmd, cfg, rf.csvPath)
		},
	}
	rf.register(cmd, bench.DefaultCount)
	cmd.Flags().StringVar(&rf.engines, "engines", "bst,avl,rb,btree", "comma-separated list of engines")
	cmd.Flags().IntVar(&rf.probes, "probes", bench.DefaultProbes, "number of timed searches")
	cmd.Flags().StringVar(&rf.csvPath, "csv", "", "write results to a CSV file")
	cmd.Flags().StringVar(&rf.profile, "profile", "", "INI profile with a [bench] section")
	return cmd
}

// config starts from defaults, applies the profile and then every flag set
// explicitly on the command line.
func (rf *runFlags) config(cmd *cobra.Command) (bench.Config, error) {
	cfg := bench.DefaultConfig()
	if rf.profile != "" {
		if err := loadProfile(rf.profile, &cfg); err != nil {
			return cfg, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("engines") || rf.profile == "" {
		kinds, err := ordtrees.ParseKinds(rf.engines)
		if err != nil {
			return cfg, err
		}
		cfg.Kinds = kinds
	}
	if flags.Changed("count") || rf.profile == "" {
		cfg.Count = rf.count
	}
	if flags.Changed("max") || rf.profile == "" {
		cfg.MaxKey = rf.max
	}
	if flags.Changed("seed") || rf.profile == "" {
		cfg.Seed = rf.seed
	}
	if flags.Changed("degree") || rf.profile == "" {
		cfg.MinDegree = rf.degree
	}
	if flags.Changed("probes") || rf.profile == "" {
		cfg.Probes = rf.probes
	}
	return cfg, nil
}

func runBench(cmd *cobra.Command, cfg bench.Config, csvPath string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	cast := caster.New(ctx)
	sub, ok := cast.Sub(ctx, uint(len(cfg.Kinds)))
	if !ok {
		return fmt.Errorf("cannot subscribe to bench results")
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range sub {
			if r, ok := msg.(bench.Result); ok {
				printResult(out, r)
			}
		}
	}()
	results, err := bench.Run(ctx, cfg, cast)
	cast.Close()
	<-done
	if err != nil {
		return err
	}
	if csvPath != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := bench.WriteCSV(f, results); err != nil {
			return err
		}
	}
	for _, r := range results {
		if !r.OK() {
			return fmt.Errorf("%s engine: %w", r.Kind, r.Err)
		}
	}
	return nil
}

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed, color.Bold)
	kindColor = color.New(color.FgCyan)
)

func printResult(w io.Writer, r bench.Result) {
	kindColor.Fprintf(w, "%-6s", r.Kind)
	fmt.Fprintf(w, " keys=%-6d height=%-3d insert=%-12s search=%-10s hits=%d/%d ",
		r.Distinct, r.Height, r.InsertTime, r.SearchTime, r.Hits, r.Probes)
	if r.OK() {
		okColor.Fprintln(w, "ok")
	} else {
		failColor.Fprintln(w, r.Err.Error())
	}
}
