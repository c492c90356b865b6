package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cardwise/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the built-in manual" }
func (*topicCmd) Usage() string {
	return `cw topic [<name>...]

  Prints one or more manual topics to the terminal. With no argument the
  table of contents is shown; "*" prints the whole manual.

Usage Examples:
$ cw topic
$ cw topic advisor calendar
$ cw topic "*"
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}
	manual, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(manual)
	return subcommands.ExitSuccess
}
