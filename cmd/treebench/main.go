/*
Treebench builds, inspects and compares ordered tree engines.

Usage:

	treebench run   [--engines bst,avl,rb,btree] [--count n] [--max k] [--seed s]
	                [--degree t] [--probes p] [--csv file] [--profile file.ini]
	treebench show  [--engine avl] [--format console|dot|html] [keys...]
	treebench check [--count n] [--max k] [--seed s] [--degree t]

A profile is an INI file with a [bench] section holding any of the keys
engines, count, max, seed, degree and probes. Flags given on the command line
override the profile.
*/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
