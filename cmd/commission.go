package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finanflow"
	"github.com/etnz/finanflow/renderer"
	"github.com/google/subcommands"
)

type commissionCmd struct {
	receiver string
	rate     string
	all      bool
	yes      bool
}

func (*commissionCmd) Name() string     { return "commission" }
func (*commissionCmd) Synopsis() string { return "launch a commission on sales" }
func (*commissionCmd) Usage() string {
	return `ff commission -r <receiver id> [-rate <percent>] [-all | <sale id>...] [-y]

  Without sales, lists the sales awaiting a commission.

  With sales, computes the commission of the receiver on them, at their
  default rate unless -rate is given, and once confirmed marks the sales as
  commissioned and records a pending "Comissão - <name>" expense.
`
}

func (c *commissionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.receiver, "r", "", "Id of the team member receiving the commission")
	f.StringVar(&c.rate, "rate", "", "Rate in percent, overrides the default rate of the receiver")
	f.BoolVar(&c.all, "all", false, "Select every sale awaiting a commission")
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation")
}

func (c *commissionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, closeBook, err := OpenBook()
	if err != nil {
		return fail(err)
	}
	defer closeBook()

	eligible := book.Views().EligibleSales()
	draft := finanflow.NewDraft()
	if c.receiver != "" {
		r, err := book.Receiver(c.receiver)
		if err != nil {
			return fail(err)
		}
		if err := draft.SelectReceiver(r); err != nil {
			return fail(err)
		}
	}
	if c.all {
		if err := draft.SelectAll(eligible); err != nil {
			return fail(err)
		}
	}
	for _, id := range f.Args() {
		if err := draft.ToggleSale(id); err != nil {
			return fail(err)
		}
	}

	if len(draft.Selected()) == 0 {
		printMarkdown(renderer.EligibleSalesMarkdown(eligible, draft.IsSelected, currency()))
		return subcommands.ExitSuccess
	}

	if err := draft.SetRate(c.rate); err != nil {
		return fail(err)
	}
	q, err := draft.Prepare(book.Ledger().Snapshot())
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.QuoteMarkdown(q, currency()))

	if !c.yes && !confirm(os.Stdin, "Launch this commission?") {
		if err := draft.Cancel(); err != nil {
			return fail(err)
		}
		fmt.Println("Nothing launched.")
		return subcommands.ExitSuccess
	}

	expense, err := draft.Confirm(book.LaunchCommission)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Launched %q of %s, pending payment, id %s\n",
		expense.Description, finanflow.M(expense.Amount, currency()), expense.ID)
	return subcommands.ExitSuccess
}

type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list the commissions launched" }
func (*historyCmd) Usage() string {
	return `ff history

  Lists the commission payouts, the most recent first. Use 'ff toggle' to
  mark them paid and 'ff rm' to delete them.
`
}

func (*historyCmd) SetFlags(_ *flag.FlagSet) {}

func (*historyCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, closeBook, err := OpenBook()
	if err != nil {
		return fail(err)
	}
	defer closeBook()

	printMarkdown(renderer.CommissionHistoryMarkdown(book.Views().CommissionHistory(), currency()))
	return subcommands.ExitSuccess
}

type batchCmd struct{}

func (*batchCmd) Name() string     { return "batch" }
func (*batchCmd) Synopsis() string { return "show the sales a commission was paid on" }
func (*batchCmd) Usage() string {
	return `ff batch <commission id>
`
}

func (*batchCmd) SetFlags(_ *flag.FlagSet) {}

func (*batchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: batch takes exactly one commission id.")
		return subcommands.ExitUsageError
	}
	book, closeBook, err := OpenBook()
	if err != nil {
		return fail(err)
	}
	defer closeBook()

	id := f.Arg(0)
	sales, ok := book.Ledger().CommissionBatch(id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: %s is not a commission with recorded sales.\n", id)
		return subcommands.ExitFailure
	}
	expense, _ := book.Ledger().Get(id)
	printMarkdown(renderer.BatchMarkdown(expense, sales, currency()))
	return subcommands.ExitSuccess
}
