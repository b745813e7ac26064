package cmd

import (
	"context"
	"flag"

	"github.com/etnz/finanflow/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show the financial dashboard" }
func (*summaryCmd) Usage() string {
	return `ff summary

  Shows the realized balance, the pending amounts, the forecast and the
  payment alerts of today.
`
}

func (*summaryCmd) SetFlags(_ *flag.FlagSet) {}

func (*summaryCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, closeBook, err := OpenBook()
	if err != nil {
		return fail(err)
	}
	defer closeBook()

	on := book.Today()
	v := book.Views()
	printMarkdown(renderer.DashboardMarkdown(v.Summary(), v.DueAlerts(on), on, currency()))
	return subcommands.ExitSuccess
}
