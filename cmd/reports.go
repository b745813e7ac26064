package cmd

import (
	"context"
	"flag"

	"github.com/etnz/finanflow/renderer"
	"github.com/google/subcommands"
)

type monthlyCmd struct{}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "income and expense per month" }
func (*monthlyCmd) Usage() string {
	return `ff monthly

  Shows the income, expense and result of each month, oldest first.
`
}

func (*monthlyCmd) SetFlags(_ *flag.FlagSet) {}

func (*monthlyCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, closeBook, err := OpenBook()
	if err != nil {
		return fail(err)
	}
	defer closeBook()

	printMarkdown(renderer.MonthlyMarkdown(book.Views().MonthlySeries(), currency()))
	return subcommands.ExitSuccess
}

type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "expense per category" }
func (*categoriesCmd) Usage() string {
	return `ff categories

  Shows the total expense of each category, largest first.
`
}

func (*categoriesCmd) SetFlags(_ *flag.FlagSet) {}

func (*categoriesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, closeBook, err := OpenBook()
	if err != nil {
		return fail(err)
	}
	defer closeBook()

	printMarkdown(renderer.CategoriesMarkdown(book.Views().CategoryBreakdown(), currency()))
	return subcommands.ExitSuccess
}
