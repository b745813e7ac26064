package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type editCmd struct {
	txFlags
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "change fields of a transaction" }
func (*editCmd) Usage() string {
	return `ff edit [flags] <id>

  Changes the given fields of the transaction with this id, other fields are kept.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) { c.txFlags.register(f) }

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: edit takes exactly one transaction id.")
		return subcommands.ExitUsageError
	}
	book, closeBook, err := OpenBook()
	if err != nil {
		return fail(err)
	}
	defer closeBook()

	id := f.Arg(0)
	tx, ok := book.Ledger().Get(id)
	if !ok {
		fmt.Printf("No transaction with id %s, nothing changed.\n", id)
		return subcommands.ExitSuccess
	}
	if err := c.txFlags.apply(&tx, book.Today()); err != nil {
		return fail(err)
	}
	if _, err := book.Update(tx); err != nil {
		return fail(err)
	}
	fmt.Printf("Updated %q\n", tx.Description)
	return subcommands.ExitSuccess
}
