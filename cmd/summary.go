package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finbook/finbook"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string { return "summary" }
func (*summaryCmd) Synopsis() string {
	return "display account balances resulting from the journal"
}
func (*summaryCmd) Usage() string {
	return `fbook summary

  Builds the journal and displays the resulting per-account balances as a
  markdown table. Cash balances are formatted in their currency; position
  balances are shown as plain volumes.

Usage Examples:
$ fbook summary

`
}

func (*summaryCmd) SetFlags(f *flag.FlagSet) {}

func (*summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	resources, err := LoadResources()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	method, err := CostMethod()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	journal, err := finbook.BuildJournal(resources, method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building journal: %v\n", err)
		return subcommands.ExitFailure
	}
	warnOrphans(journal.Orphans)

	printMarkdown(finbook.SummaryMarkdown(finbook.Balances(journal.Entries)))
	return subcommands.ExitSuccess
}
