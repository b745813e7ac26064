package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finanflow/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	output string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "write a printable HTML report" }
func (*reportCmd) Usage() string {
	return `ff report [-o <file>]

  Writes the totals and the list of every transaction as an HTML page ready
  to be printed from a browser.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "relatorio.html", "Output file, - for the standard output")
}

func (c *reportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, closeBook, err := OpenBook()
	if err != nil {
		return fail(err)
	}
	defer closeBook()

	txs := book.Ledger().Snapshot()
	if c.output == "-" {
		if err := renderer.HTMLReport(os.Stdout, txs, now(), currency()); err != nil {
			return fail(err)
		}
		return subcommands.ExitSuccess
	}

	f, err := os.Create(c.output)
	if err != nil {
		return fail(err)
	}
	if err := renderer.HTMLReport(f, txs, now(), currency()); err != nil {
		f.Close()
		return fail(err)
	}
	if err := f.Close(); err != nil {
		return fail(err)
	}
	fmt.Printf("Report written to %s\n", c.output)
	return subcommands.ExitSuccess
}
