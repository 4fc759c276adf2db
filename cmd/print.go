package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finbook/finbook"
	"github.com/google/subcommands"
	"github.com/natefinch/atomic"
)

type printCmd struct {
	outputFile string
}

func (*printCmd) Name() string { return "print" }
func (*printCmd) Synopsis() string {
	return "build the journal and print it in hledger format"
}
func (*printCmd) Usage() string {
	return `fbook print [-o <output_file>]

  Reads the resource file, replays every portfolio's transactions in
  chronological order and prints the resulting double-entry journal in
  hledger format. Transactions referencing undefined portfolios are
  skipped with a warning.

Usage Examples:
# Print the journal for book.yaml to stdout.
$ fbook print

# Write the journal to a file.
$ fbook print -o journal.hledger

`
}

func (p *printCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.outputFile, "o", "", "Write the journal to this file instead of stdout.")
}

func (p *printCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if p.outputFile == "" {
		if err := finbook.EncodeHLedger(os.Stdout, journal.Entries); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing journal: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	var buf bytes.Buffer
	if err := finbook.EncodeHLedger(&buf, journal.Entries); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing journal: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := atomic.WriteFile(p.outputFile, &buf); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing journal to %q: %v\n", p.outputFile, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Journal written to %s\n", p.outputFile)
	return subcommands.ExitSuccess
}
