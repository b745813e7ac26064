package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/finanflow"
	"github.com/google/subcommands"
)

type importCmd struct {
	team bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import transactions or team members from a file" }
func (*importCmd) Usage() string {
	return `ff import [-team] <file>

  Imports records from a JSONL file, one record per line, or from a JSON
  array as exported by the browser version of the application. Use - to read
  the standard input.

  Transactions with an id already in the ledger replace it, others are
  appended. With -team the file holds team members instead, those with a
  known id are skipped.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.team, "team", false, "The file holds team members")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: import takes exactly one file.")
		return subcommands.ExitUsageError
	}
	var in io.Reader = os.Stdin
	if name := f.Arg(0); name != "-" {
		file, err := os.Open(name)
		if err != nil {
			return fail(err)
		}
		defer file.Close()
		in = file
	}

	book, closeBook, err := OpenBook()
	if err != nil {
		return fail(err)
	}
	defer closeBook()

	if c.team {
		rs, err := finanflow.DecodeReceivers(in)
		if err != nil {
			return fail(err)
		}
		added, err := book.ImportReceivers(rs)
		if err != nil {
			return fail(err)
		}
		fmt.Printf("Imported %d team members, %d skipped\n", added, len(rs)-added)
		return subcommands.ExitSuccess
	}

	txs, err := finanflow.DecodeTransactions(in)
	if err != nil {
		return fail(err)
	}
	added, replaced, err := book.Import(txs)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Imported %d transactions, %d replaced\n", added, replaced)
	return subcommands.ExitSuccess
}
