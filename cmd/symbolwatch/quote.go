package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"SymbolWatch/internal/notifier"

	"github.com/google/subcommands"
)

type quoteCmd struct{}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "prints the latest price of every symbol once" }
func (*quoteCmd) Usage() string {
	return `symbolwatch quote

Runs a single refresh cycle and prints the watchlist as a table. Symbols
without data for the fetch window are shown as N/A.
`
}

func (*quoteCmd) SetFlags(*flag.FlagSet) {}

func (*quoteCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := loadApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	rep := a.scheduler(ctx).RefreshNow(ctx)
	fmt.Print(notifier.FormatQuoteTable(a.store.All()))
	if rep.Failed > 0 {
		log.Printf("[WARN] %d of %d symbols failed", rep.Failed, len(rep.Events))
	}
	return subcommands.ExitSuccess
}
