package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finanflow/renderer"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export-csv" }
func (*exportCmd) Synopsis() string { return "export all transactions as a spreadsheet" }
func (*exportCmd) Usage() string {
	return `ff export-csv [-o <file>]

  Writes every transaction, commission payouts included, to a CSV file.
  Use -o - to write to the standard output.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Defaults to DicaDeTattoo_Financeiro_<today>.csv")
}

func (c *exportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, closeBook, err := OpenBook()
	if err != nil {
		return fail(err)
	}
	defer closeBook()

	name := c.output
	if name == "" {
		name = renderer.CSVFileName(book.Today())
	}
	txs := book.Ledger().Snapshot()
	if name == "-" {
		if err := renderer.WriteCSV(os.Stdout, txs); err != nil {
			return fail(err)
		}
		return subcommands.ExitSuccess
	}

	f, err := os.Create(name)
	if err != nil {
		return fail(err)
	}
	if err := renderer.WriteCSV(f, txs); err != nil {
		f.Close()
		return fail(err)
	}
	if err := f.Close(); err != nil {
		return fail(err)
	}
	fmt.Printf("Exported %d transactions to %s\n", len(txs), name)
	return subcommands.ExitSuccess
}
