package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/cardwise"
	"github.com/etnz/cardwise/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Install shell completion before flag parsing; Complete exits on its own
	// when invoked by the shell.
	completion().Complete("cw")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	var cardIDs []string
	for _, c := range cardwise.Cards() {
		cardIDs = append(cardIDs, c.ID)
	}
	cards := predict.Set(cardIDs)

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"state-path": predict.Dirs("*"),
		},
		Sub: map[string]*complete.Command{
			"advise":   {},
			"optimize": {},
			"cards": {Flags: map[string]complete.Predictor{
				"f": predict.Set{"all", cardwise.FilterNoFee},
			}},
			"add":     {Args: cards},
			"remove":  {Args: cards},
			"wallet":  {},
			"anniversary": {
				Args:  cards,
				Flags: map[string]complete.Predictor{"clear": predict.Nothing},
			},
			"benefits": {Flags: map[string]complete.Predictor{"all": predict.Nothing}},
			"claim":    {},
			"expand":   {Args: cards},
			"reset":    {},
			"calendar": {},
			"export": {Flags: map[string]complete.Predictor{
				"o": predict.Files("*.ics"),
			}},
			"import": {Args: predict.Files("*.json")},
			"topic":  {},
		},
	}
}
