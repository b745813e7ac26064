package cmd

import (
	"context"
	"flag"
	"slices"

	"github.com/etnz/finanflow"
	"github.com/etnz/finanflow/date"
	"github.com/etnz/finanflow/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	all      bool
	typ      string
	status   string
	category string
	period   string
	on       string
	head     int
	tail     int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions" }
func (*txCmd) Usage() string {
	return `ff tx [-type income|expense] [-status paid|pending] [-c <category>] [-p day|week|month|year -d <date>] [-head n|-tail n] [-all]

  Lists the transactions, the most recent first. Commission payouts are
  listed by 'ff history' unless -all is given.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "Include commission payouts")
	f.StringVar(&c.typ, "type", "", "Only transactions of this type: income or expense")
	f.StringVar(&c.status, "status", "", "Only transactions with this status: paid or pending")
	f.StringVar(&c.category, "c", "", "Only transactions of this category")
	f.StringVar(&c.period, "p", "", "Only transactions booked in this period around -d: day, week, month or year")
	f.StringVar(&c.on, "d", "0d", "Reference date of -p")
	f.IntVar(&c.head, "head", 0, "Show only the n most recent transactions")
	f.IntVar(&c.tail, "tail", 0, "Show only the n oldest transactions")
}

func (c *txCmd) filters(today date.Date) ([]func(finanflow.Transaction) bool, error) {
	var filters []func(finanflow.Transaction) bool
	if c.typ != "" {
		t, err := finanflow.ParseType(c.typ)
		if err != nil {
			return nil, err
		}
		filters = append(filters, finanflow.ByType(t))
	}
	if c.status != "" {
		s, err := finanflow.ParseStatus(c.status)
		if err != nil {
			return nil, err
		}
		filters = append(filters, finanflow.ByStatus(s))
	}
	if c.category != "" {
		filters = append(filters, finanflow.ByCategory(c.category))
	}
	if c.period != "" {
		p, err := date.ParsePeriod(c.period)
		if err != nil {
			return nil, err
		}
		on, err := date.ParseFrom(c.on, today)
		if err != nil {
			return nil, err
		}
		filters = append(filters, finanflow.ByDateRange(date.NewRange(on, p)))
	}
	return filters, nil
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, closeBook, err := OpenBook()
	if err != nil {
		return fail(err)
	}
	defer closeBook()

	on := book.Today()
	filters, err := c.filters(on)
	if err != nil {
		return fail(err)
	}

	list := book.Views().Visible()
	if c.all {
		list = book.Ledger().Snapshot()
		slices.SortStableFunc(list, func(a, b finanflow.Transaction) int { return b.Date.Compare(a.Date) })
	}

	var txs []finanflow.Transaction
next:
	for _, tx := range list {
		for _, accept := range filters {
			if !accept(tx) {
				continue next
			}
		}
		txs = append(txs, tx)
	}

	if c.head > 0 && c.head < len(txs) {
		txs = txs[:c.head]
	}
	if c.tail > 0 && c.tail < len(txs) {
		txs = txs[len(txs)-c.tail:]
	}

	printMarkdown(renderer.TransactionsMarkdown(txs, on, currency()))
	return subcommands.ExitSuccess
}
