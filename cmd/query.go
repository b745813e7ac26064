package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/finanflow"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression over the book" }
func (*queryCmd) Usage() string {
	return `ff query <jsonpath>

  Evaluates the expression over a document holding the book:

    {"transactions": [...], "receivers": [...], "summary": {...}}

  and prints the result as JSON. For instance:

    ff query '$.transactions[?(@.status=="PENDING")].description'
`
}

func (*queryCmd) SetFlags(_ *flag.FlagSet) {}

// bookDocument returns the book as a generic JSON value.
func bookDocument(book *finanflow.Book) (any, error) {
	s := book.Views().Summary()
	doc := map[string]any{
		"transactions": book.Ledger().Snapshot(),
		"receivers":    book.Team().Snapshot(),
		"summary": map[string]any{
			"totalIncome":    s.TotalIncome,
			"totalExpense":   s.TotalExpense,
			"balance":        s.Balance,
			"pendingIncome":  s.PendingIncome,
			"pendingExpense": s.PendingExpense,
			"forecast":       s.Forecast(),
		},
	}
	// jsonpath works on the generic representation.
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func (*queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: query takes exactly one JSONPath expression.")
		return subcommands.ExitUsageError
	}
	book, closeBook, err := OpenBook()
	if err != nil {
		return fail(err)
	}
	defer closeBook()

	doc, err := bookDocument(book)
	if err != nil {
		return fail(err)
	}
	path := f.Arg(0)
	val, err := jsonpath.Get(path, doc)
	if err != nil {
		return fail(fmt.Errorf("error evaluating %q: %w", path, err))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(val); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
