package cmd

import (
	"context"
	"flag"

	"github.com/etnz/cardwise/renderer"
	"github.com/google/subcommands"
)

// benefitsCmd holds the flags for the 'benefits' subcommand.
type benefitsCmd struct {
	all bool
}

func (*benefitsCmd) Name() string     { return "benefits" }
func (*benefitsCmd) Synopsis() string { return "show the per-card perk tracker" }
func (*benefitsCmd) Usage() string {
	return `cw benefits [-all]

  Shows every wallet card's perks with their claim checklists. Collapsed
  cards render as a one-line header; use 'cw expand <card-id>' to keep a
  card open, or -all to show everything once.
`
}

func (c *benefitsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "Show every card's perks, ignoring the collapsed state.")
}

func (c *benefitsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, _ := LoadWallet()
	opts := renderer.BenefitsRenderOptions{ShowAll: c.all}
	printMarkdown(renderer.RenderBenefits(renderer.NewBenefits(w), opts))
	return subcommands.ExitSuccess
}
