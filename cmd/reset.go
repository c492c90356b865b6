package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type resetCmd struct{}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "clear the claim state of every perk" }
func (*resetCmd) Usage() string {
	return `cw reset

  Clears all perk claim state, typically at the start of a new card year.
  Cards, anniversaries, and expanded sections are untouched.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, store := LoadWallet()
	w.ResetPerks()
	if status := SaveWallet(store, w); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Println("Perk claim state cleared.")
	return subcommands.ExitSuccess
}
