package cmd

import (
	"context"
	"flag"

	"github.com/etnz/cardwise/date"
	"github.com/etnz/cardwise/renderer"
	"github.com/google/subcommands"
)

type calendarCmd struct{}

func (*calendarCmd) Name() string     { return "calendar" }
func (*calendarCmd) Synopsis() string { return "list the upcoming perk deadlines" }
func (*calendarCmd) Usage() string {
	return `cw calendar

  Lists the upcoming perk reminders: a heads-up a week before each
  deadline and a last-day reminder on the deadline itself.
`
}

func (c *calendarCmd) SetFlags(f *flag.FlagSet) {}

func (c *calendarCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, _ := LoadWallet()
	now := date.Today()
	printMarkdown(renderer.RenderCalendar(renderer.NewCalendar(now, w.Events(now))))
	return subcommands.ExitSuccess
}
