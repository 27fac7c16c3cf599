package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/ordtrees"
	"github.com/npillmayer/ordtrees/bench"
	"github.com/npillmayer/ordtrees/treeviz"
	"github.com/spf13/cobra"
)

type showFlags struct {
	keyFlags
	engine string
	format string
}

func newShowCmd() *cobra.Command {
	sf := &showFlags{}
	cmd := &cobra.Command{
		Use:   "show [keys...]",
		Short: "Build one engine and print its keys and shape",
		Long:  "Show inserts the keys given as arguments, or random keys if there are none, into one engine and prints the in-order traversal followed by the tree.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return sf.show(cmd.OutOrStdout(), args)
		},
	}
	sf.register(cmd, 15)
	cmd.Flags().StringVar(&sf.engine, "engine", "avl", "engine to build (bst, avl, rb, btree)")
	cmd.Flags().StringVar(&sf.format, "format", "console", "output format (console, dot, html)")
	return cmd
}

func (sf *showFlags) show(w io.Writer, args []string) error {
	kind, err := ordtrees.ParseKind(sf.engine)
	if err != nil {
		return err
	}
	keys, err := parseKeys(args)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		if keys, err = bench.Keys(sf.seed, sf.count, sf.max); err != nil {
			return err
		}
	}
	engine, _, err := ordtrees.Build(ordtrees.Config{Kind: kind, MinDegree: sf.degree}, keys...)
	if err != nil {
		return err
	}
	var b strings.Builder
	for key := range engine.All() {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(key))
	}
	fmt.Fprintf(w, "%s tree, %d keys, height %d: %s\n", kind, engine.Len(), engine.Height(), b.String())
	shape := ordtrees.Shape(engine)
	switch strings.ToLower(sf.format) {
	case "console":
		return treeviz.NewConsole(nil, nil).Fprint(w, shape)
	case "dot":
		return treeviz.ToDot(shape, w)
	case "html":
		if err := treeviz.ToHTML(shape, w); err != nil {
			return err
		}
		_, err = io.WriteString(w, "\n")
		return err
	}
	return fmt.Errorf("%w: format %q", ordtrees.ErrIllegalArguments, sf.format)
}

func parseKeys(args []string) ([]int, error) {
	keys := make([]int, 0, len(args))
	for _, arg := range args {
		key, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: key %q is not an integer", ordtrees.ErrIllegalArguments, arg)
		}
		keys = append(keys, key)
	}
	return keys, nil
}
