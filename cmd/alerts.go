package cmd

import (
	"context"
	"flag"

	"github.com/etnz/finanflow/date"
	"github.com/etnz/finanflow/renderer"
	"github.com/google/subcommands"
)

type alertsCmd struct {
	on string
}

func (*alertsCmd) Name() string     { return "alerts" }
func (*alertsCmd) Synopsis() string { return "list overdue and upcoming payments" }
func (*alertsCmd) Usage() string {
	return `ff alerts [-d <date>]

  Lists the pending transactions that are overdue, due today or due in the
  next days.
`
}

func (c *alertsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.on, "d", "0d", "Date the alerts are computed for")
}

func (c *alertsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, closeBook, err := OpenBook()
	if err != nil {
		return fail(err)
	}
	defer closeBook()

	on, err := date.ParseFrom(c.on, book.Today())
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.AlertsMarkdown(book.Views().DueAlerts(on), currency()))
	return subcommands.ExitSuccess
}
