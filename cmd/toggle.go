package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type toggleCmd struct{}

func (*toggleCmd) Name() string     { return "toggle" }
func (*toggleCmd) Synopsis() string { return "switch transactions between paid and pending" }
func (*toggleCmd) Usage() string {
	return `ff toggle <id>...

  Marks pending transactions as paid, and paid ones as pending.
`
}

func (*toggleCmd) SetFlags(_ *flag.FlagSet) {}

func (c *toggleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: toggle takes at least one transaction id.")
		return subcommands.ExitUsageError
	}
	book, closeBook, err := OpenBook()
	if err != nil {
		return fail(err)
	}
	defer closeBook()

	for _, id := range f.Args() {
		if !book.ToggleStatus(id) {
			fmt.Printf("No transaction with id %s\n", id)
			continue
		}
		tx, _ := book.Ledger().Get(id)
		fmt.Printf("%q is now %s\n", tx.Description, tx.Status)
	}
	return subcommands.ExitSuccess
}
