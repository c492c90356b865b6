package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a card to the wallet" }
func (*addCmd) Usage() string {
	return `cw add <card-id>...

  Adds one or more catalog cards to the wallet. Card ids are shown by
  'cw cards'. Adding a card already in the wallet is a no-op.

Usage Examples:
$ cw add venture-x amex-gold
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: missing card id. See 'cw cards' for the catalog.\n")
		return subcommands.ExitUsageError
	}
	w, store := LoadWallet()
	for _, id := range f.Args() {
		if err := w.Add(id); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v. See 'cw cards' for the catalog.\n", err)
			return subcommands.ExitFailure
		}
	}
	if status := SaveWallet(store, w); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Wallet now holds %d cards.\n", len(w.CardIDs()))
	return subcommands.ExitSuccess
}
