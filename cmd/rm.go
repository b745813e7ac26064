package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finanflow"
	"github.com/google/subcommands"
)

type rmCmd struct {
	yes bool
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete transactions" }
func (*rmCmd) Usage() string {
	return `ff rm [-y] <id>...

  Deletes the transactions with these ids. Deleting a commission expense does
  not make its sales eligible again.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: rm takes at least one transaction id.")
		return subcommands.ExitUsageError
	}
	book, closeBook, err := OpenBook()
	if err != nil {
		return fail(err)
	}
	defer closeBook()

	for _, id := range f.Args() {
		tx, ok := book.Ledger().Get(id)
		if !ok {
			fmt.Printf("No transaction with id %s\n", id)
			continue
		}
		question := fmt.Sprintf("Delete %q (%s)?", tx.Description, finanflow.M(tx.Amount, currency()))
		if !c.yes && !confirm(os.Stdin, question) {
			continue
		}
		book.Delete(id)
		fmt.Printf("Deleted %q\n", tx.Description)
	}
	return subcommands.ExitSuccess
}
