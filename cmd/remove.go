package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove a card from the wallet" }
func (*removeCmd) Usage() string {
	return `cw remove <card-id>...

  Removes cards from the wallet. The claim state of their perks is purged;
  anniversaries are kept in case the card comes back.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: missing card id.\n")
		return subcommands.ExitUsageError
	}
	w, store := LoadWallet()
	for _, id := range f.Args() {
		if !w.Has(id) {
			fmt.Fprintf(os.Stderr, "Warning: card %q is not in the wallet.\n", id)
			continue
		}
		w.Remove(id)
	}
	if status := SaveWallet(store, w); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Wallet now holds %d cards.\n", len(w.CardIDs()))
	return subcommands.ExitSuccess
}
