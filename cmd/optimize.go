package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cardwise"
	"github.com/etnz/cardwise/renderer"
	"github.com/google/subcommands"
)

type optimizeCmd struct{}

func (*optimizeCmd) Name() string     { return "optimize" }
func (*optimizeCmd) Synopsis() string { return "show the best wallet card for every category" }
func (*optimizeCmd) Usage() string {
	return `cw optimize

  Ranks the wallet for every spending category at once, one winner per row.
`
}

func (c *optimizeCmd) SetFlags(f *flag.FlagSet) {}

func (c *optimizeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, _ := LoadWallet()
	rankings, err := cardwise.Optimize(w.Cards())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v. Add cards with 'cw add <card-id>'.\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderOptimizer(renderer.NewOptimizer(rankings)))
	return subcommands.ExitSuccess
}
