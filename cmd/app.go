// Package cmd implements the CLI application to build journals from
// portfolio resource files.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/finbook/finbook"
	"github.com/google/subcommands"
)

// Commands lists every subcommand the fbook binary registers.
var Commands = []subcommands.Command{
	&printCmd{},
	&checkCmd{},
	&summaryCmd{},
	&queryCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var resourceFile = flag.String("f", "book.yaml", "Path to the resource file (multi-document YAML). Use '-' for stdin.")
var costMethod = flag.String("cost-method", "fifo", "Cost basis method used to match sales against lots.")

// LoadResources reads and decodes the resource file selected by the -f flag.
func LoadResources() ([]finbook.Resource, error) {
	var r io.Reader
	if *resourceFile == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(*resourceFile)
		if err != nil {
			return nil, fmt.Errorf("could not open resource file %q: %w", *resourceFile, err)
		}
		defer f.Close()
		r = f
	}
	return finbook.DecodeResources(r)
}

// CostMethod parses the method selected by the -cost-method flag.
func CostMethod() (finbook.CostBasisMethod, error) {
	return finbook.ParseCostBasisMethod(*costMethod)
}

// warnOrphans reports transactions that reference undefined portfolios.
func warnOrphans(orphans []finbook.OrphanedTransactions) {
	for _, o := range orphans {
		fmt.Fprintf(os.Stderr, "Warning: %d transaction(s) reference undefined portfolio %q and were skipped\n", o.Count, o.Portfolio)
	}
}
