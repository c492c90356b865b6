package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cardwise"
	"github.com/etnz/cardwise/date"
	"github.com/google/subcommands"
)

// anniversaryCmd holds the flags for the 'anniversary' subcommand.
type anniversaryCmd struct {
	clear bool
}

func (*anniversaryCmd) Name() string     { return "anniversary" }
func (*anniversaryCmd) Synopsis() string { return "record when a card renews each year" }
func (*anniversaryCmd) Usage() string {
	return `cw anniversary <card-id> <MM-DD>
cw anniversary <card-id> -clear

  Records the card's renewal date so annual perk deadlines are computed
  against it instead of December 31.

Usage Examples:
$ cw anniversary venture-x 06-15
$ cw anniversary venture-x -clear
`
}

func (c *anniversaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.clear, "clear", false, "Remove the card's anniversary.")
}

func (c *anniversaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: missing card id.\n")
		return subcommands.ExitUsageError
	}
	cardID := f.Arg(0)
	card, ok := cardwise.CardByID(cardID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown card %q.\n", cardID)
		return subcommands.ExitFailure
	}

	w, store := LoadWallet()
	if c.clear {
		w.ClearAnniversary(cardID)
		if status := SaveWallet(store, w); status != subcommands.ExitSuccess {
			return status
		}
		fmt.Printf("Anniversary cleared for %s.\n", card.DisplayName())
		return subcommands.ExitSuccess
	}

	if f.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Error: want a card id and a MM-DD date.\n")
		return subcommands.ExitUsageError
	}
	md, err := date.ParseMonthDay(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	w.SetAnniversary(cardID, md)
	if status := SaveWallet(store, w); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("%s renews on %s; annual perks expire the day before.\n", card.DisplayName(), md.Display())
	return subcommands.ExitSuccess
}
