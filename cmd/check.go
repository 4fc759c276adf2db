package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finbook/finbook"
	"github.com/google/subcommands"
)

type checkCmd struct{}

func (*checkCmd) Name() string { return "check" }
func (*checkCmd) Synopsis() string {
	return "validate the resource file without printing the journal"
}
func (*checkCmd) Usage() string {
	return `fbook check

  Validates the resource file: every portfolio definition must be complete,
  every transaction must reference a defined portfolio, and every sale must
  be covered by previously acquired lots. Nothing is printed on success.

Usage Examples:
$ fbook check
$ fbook check -f portfolios.yaml

`
}

func (*checkCmd) SetFlags(f *flag.FlagSet) {}

func (*checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	failed := false
	categorized := finbook.Categorize(resources)
	for _, port := range categorized.Portfolios() {
		if err := port.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid portfolio %q: %v\n", port.ID, err)
			failed = true
		}
	}
	for _, port := range categorized.Portfolios() {
		for _, tx := range categorized.Transactions(port.ID) {
			if err := tx.Validate(); err != nil {
				fmt.Fprintf(os.Stderr, "Invalid %s in portfolio %q: %v\n", tx.What(), port.ID, err)
				failed = true
			}
		}
	}
	for _, o := range categorized.Orphans() {
		fmt.Fprintf(os.Stderr, "Undefined portfolio %q is referenced by %d transaction(s)\n", o.Portfolio, o.Count)
		failed = true
	}

	// Dry-run the build to surface inventory shortfalls.
	if _, err := finbook.BuildJournal(resources, method); err != nil {
		fmt.Fprintf(os.Stderr, "Error building journal: %v\n", err)
		failed = true
	}

	if failed {
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "✅ %s is valid.\n", *resourceFile)
	return subcommands.ExitSuccess
}
