package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/finbook/finbook/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI for shell completion. Running with
// COMP_LINE set answers the completion request and exits.
func completion() {
	fileFlags := map[string]complete.Predictor{
		"f":           predict.Files("*.yaml"),
		"cost-method": predict.Set{"fifo"},
	}
	fbook := &complete.Command{
		Flags: fileFlags,
		Sub: map[string]*complete.Command{
			"print":   {Flags: map[string]complete.Predictor{"o": predict.Files("*")}},
			"check":   {},
			"summary": {},
			"query":   {},
			"topic":   {},
		},
	}
	fbook.Complete("fbook")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
