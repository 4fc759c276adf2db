package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/finbook/finbook"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string { return "query" }
func (*queryCmd) Synopsis() string {
	return "run a JSONPath query against the journal"
}
func (*queryCmd) Usage() string {
	return `fbook query <jsonpath>

  Builds the journal, projects it to JSON (an array of entries, each with
  date, description, postings and an optional inventory snapshot) and
  evaluates a JSONPath expression against it. Without an expression the
  whole JSON document is printed.

Usage Examples:
# Print the full journal as JSON.
$ fbook query

# All entry descriptions.
$ fbook query '$[*].description'

# Postings of the first entry.
$ fbook query '$[0].postings'

`
}

func (*queryCmd) SetFlags(f *flag.FlagSet) {}

func (*queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	var buf bytes.Buffer
	if err := finbook.EncodeJournalJSON(&buf, journal.Entries); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if f.NArg() == 0 {
		os.Stdout.Write(buf.Bytes())
		return subcommands.ExitSuccess
	}

	var doc interface{}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	result, err := jsonpath.Get(f.Arg(0), doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating query %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
