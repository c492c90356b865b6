package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/cardwise"
	"github.com/etnz/cardwise/renderer"
	"github.com/google/subcommands"
)

// adviseCmd holds the flags for the 'advise' subcommand.
type adviseCmd struct{}

func (*adviseCmd) Name() string     { return "advise" }
func (*adviseCmd) Synopsis() string { return "recommend the best wallet card for a purchase" }
func (*adviseCmd) Usage() string {
	return `cw advise <query>

  Matches the free-text query (a merchant or a kind of spending) to a
  spending category and ranks the wallet cards for it, best first.

Usage Examples:
$ cw advise coffee
$ cw advise "dining out"
$ cw advise delta
`
}

func (c *adviseCmd) SetFlags(f *flag.FlagSet) {}

func (c *adviseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	query := strings.Join(f.Args(), " ")
	cat := cardwise.MatchCategory(query)
	if cat == nil {
		fmt.Fprintf(os.Stderr, "Error: nothing to advise on, give a merchant or a kind of spending.\n")
		return subcommands.ExitUsageError
	}

	w, _ := LoadWallet()
	advice, err := cardwise.Advise(cat.ID, w.Cards())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v. Add cards with 'cw add <card-id>'.\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderAdvice(renderer.NewAdvice(advice, query)))
	return subcommands.ExitSuccess
}
