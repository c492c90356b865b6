package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/cardwise"
	"github.com/google/subcommands"
)

// claimCmd holds the flags for the 'claim' subcommand.
type claimCmd struct{}

func (*claimCmd) Name() string     { return "claim" }
func (*claimCmd) Synopsis() string { return "mark a perk claim period used (or unused)" }
func (*claimCmd) Usage() string {
	return `cw claim <perk-id> [period]

  Toggles one claim period of a perk. Periods are zero-based: January is 0,
  Q3 is 2. The period defaults to 0, which is the only period of annual
  perks. Claiming a used period makes it unused again.

Usage Examples:
$ cw claim ag-uber 3
$ cw claim vx-travel-credit
`
}

func (c *claimCmd) SetFlags(f *flag.FlagSet) {}

func (c *claimCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 || f.NArg() > 2 {
		fmt.Fprintf(os.Stderr, "Error: want a perk id and an optional period.\n")
		return subcommands.ExitUsageError
	}
	perkID := f.Arg(0)
	perk, card, ok := cardwise.PerkByID(perkID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown perk %q. See 'cw benefits -all' for perk ids.\n", perkID)
		return subcommands.ExitFailure
	}
	if !perk.Trackable() {
		fmt.Fprintf(os.Stderr, "Error: perk %q (%s) has no claim cycle to track.\n", perkID, perk.Frequency)
		return subcommands.ExitFailure
	}

	period := 0
	if f.NArg() == 2 {
		var err error
		period, err = strconv.Atoi(f.Arg(1))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: period must be a number: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	total := perk.Frequency.Periods()
	if period < 0 || period >= total {
		fmt.Fprintf(os.Stderr, "Error: period %d out of range, %s perks have periods 0 to %d.\n",
			period, perk.Frequency, total-1)
		return subcommands.ExitUsageError
	}

	w, store := LoadWallet()
	if !w.Has(card.ID) {
		fmt.Fprintf(os.Stderr, "Error: %s is not in the wallet.\n", card.DisplayName())
		return subcommands.ExitFailure
	}
	w.TogglePeriod(perkID, period)
	if status := SaveWallet(store, w); status != subcommands.ExitSuccess {
		return status
	}

	state := "unused"
	if w.IsPeriodUsed(perkID, period) {
		state = "used"
	}
	label := perk.Frequency.PeriodLabels()[period]
	fmt.Printf("%s %s: %s now %s (%d/%d claimed, %s of %s).\n",
		card.DisplayName(), perk.Name, label, state,
		w.UsedPeriods(perk), total, w.UsedValue(perk), perk.Value)
	return subcommands.ExitSuccess
}
