package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"SymbolWatch/internal/notifier"

	"github.com/google/subcommands"
)

type chartCmd struct{}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "prints the price series of one symbol" }
func (*chartCmd) Usage() string {
	return `symbolwatch chart <SYMBOL>

Refreshes the watchlist once and prints the series that a chart would be
drawn from: number of points, time span, open, session high/low, last close
and change over the window. The symbol must be part of the watchlist.
`
}

func (*chartCmd) SetFlags(*flag.FlagSet) {}

func (*chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: chart takes exactly one symbol")
		return subcommands.ExitUsageError
	}
	a, err := loadApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	symbol := f.Arg(0)
	if _, err := a.store.Get(symbol); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	a.scheduler(ctx).RefreshNow(ctx)
	chart, err := a.store.Chart(symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Print(notifier.FormatChart(chart))
	return subcommands.ExitSuccess
}
