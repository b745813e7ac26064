package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/finanflow"
	"github.com/google/subcommands"
)

type addCmd struct {
	txFlags
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new income or expense" }
func (*addCmd) Usage() string {
	return `ff add -desc <description> -a <amount> [-type income|expense] [-c <category>] [-s <subcategory>] [-d <date>] [-due <date>] [-status paid|pending]

  Records a new transaction. Without flags it is a pending expense in the
  first expense category, booked and due today.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) { c.txFlags.register(f) }

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, closeBook, err := OpenBook()
	if err != nil {
		return fail(err)
	}
	defer closeBook()

	on := book.Today()
	category := finanflow.DefaultTaxonomy.Categories()[1]
	tx := finanflow.Transaction{
		Type:        finanflow.Expense,
		Category:    category,
		Subcategory: finanflow.DefaultTaxonomy.DefaultSubcategory(category),
		Date:        on,
		Status:      finanflow.Pending,
	}
	if err := c.txFlags.apply(&tx, on); err != nil {
		return fail(err)
	}
	if c.due == "" {
		tx.DueDate = tx.Date
	}

	tx, err = book.Create(tx)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded %q with id %s\n", tx.Description, tx.ID)
	return subcommands.ExitSuccess
}
