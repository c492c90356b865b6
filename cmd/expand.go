package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type expandCmd struct{}

func (*expandCmd) Name() string     { return "expand" }
func (*expandCmd) Synopsis() string { return "toggle a card's benefits section open or closed" }
func (*expandCmd) Usage() string {
	return `cw expand <card-id>...

  Toggles whether a card's perks render in full in 'cw benefits'. The
  state is remembered across runs.
`
}

func (c *expandCmd) SetFlags(f *flag.FlagSet) {}

func (c *expandCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
		w.ToggleExpand(id)
		state := "collapsed"
		if w.Expanded(id) {
			state = "expanded"
		}
		fmt.Printf("%s is now %s.\n", id, state)
	}
	return SaveWallet(store, w)
}
