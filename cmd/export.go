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

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the perk reminders as an iCalendar file" }
func (*exportCmd) Usage() string {
	return `cw export [-o <file>]

  Writes the upcoming perk reminders as an .ics document that any calendar
  app can import. With no -o, the document goes to stdout.

Usage Examples:
$ cw export -o ` + cardwise.DefaultICSFilename + `
$ cw export | pbcopy
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Write the calendar to this file instead of stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, _ := LoadWallet()
	events := w.Events(date.Today())

	out := os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		out = file
	}
	if err := cardwise.EncodeICS(out, events); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing calendar: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.output != "" {
		fmt.Printf("Wrote %d reminders to %s.\n", len(events), c.output)
	}
	return subcommands.ExitSuccess
}
