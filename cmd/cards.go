package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/etnz/cardwise"
	"github.com/etnz/cardwise/renderer"
	"github.com/google/subcommands"
)

// cardsCmd holds the flags for the 'cards' subcommand.
type cardsCmd struct {
	filter string
}

func (*cardsCmd) Name() string     { return "cards" }
func (*cardsCmd) Synopsis() string { return "browse the card catalog" }
func (*cardsCmd) Usage() string {
	return `cw cards [-f <filter>] [search...]

  Lists the card catalog. The filter is "all", "no-fee", or an issuer name;
  the free text searches card names and issuers.

Usage Examples:
$ cw cards
$ cw cards -f no-fee
$ cw cards -f Chase sapphire
`
}

func (c *cardsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.filter, "f", "all", "Filter: all, no-fee, or an issuer name.")
}

func (c *cardsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	search := strings.Join(f.Args(), " ")
	list := cardwise.FilterCards(c.filter, search)
	w, _ := LoadWallet()
	printMarkdown(renderer.RenderCards(renderer.NewCardList(c.filter, search, list, w)))
	return subcommands.ExitSuccess
}
