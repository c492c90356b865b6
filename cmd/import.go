package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cardwise"
	"github.com/google/subcommands"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import wallet state from a browser localStorage dump" }
func (*importCmd) Usage() string {
	return `cw import <dump.json>

  Reads a localStorage dump exported from the CardWise web app (a single
  JSON object mapping storage keys to their values) and replaces the local
  wallet state with it. The import is best effort: unknown cards and
  malformed entries are dropped with a warning.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: want exactly one dump file.\n")
		return subcommands.ExitUsageError
	}
	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening dump: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	w, err := cardwise.ImportLocalStorage(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	store := cardwise.NewStore(*statePath)
	if status := SaveWallet(store, w); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Imported %d cards into %s.\n", len(w.CardIDs()), store.Dir)
	return subcommands.ExitSuccess
}
