package cmd

import (
	"context"
	"flag"

	"github.com/etnz/cardwise/renderer"
	"github.com/google/subcommands"
)

type walletCmd struct{}

func (*walletCmd) Name() string     { return "wallet" }
func (*walletCmd) Synopsis() string { return "show the wallet dashboard" }
func (*walletCmd) Usage() string {
	return `cw wallet

  Shows the wallet cards with their value statistics: total perk value,
  claimed value, and the net against annual fees.
`
}

func (c *walletCmd) SetFlags(f *flag.FlagSet) {}

func (c *walletCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, _ := LoadWallet()
	printMarkdown(renderer.RenderDashboard(renderer.NewDashboard(w)))
	return subcommands.ExitSuccess
}
