package renderer

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/etnz/finanflow"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed report.html
var reportSource string

var reportPage = template.Must(template.New("report").Parse(reportSource))

// ReportTotals are the totals of the printable report. They ignore the
// payment status, except for PaidExpense.
type ReportTotals struct {
	Income      decimal.Decimal
	Expense     decimal.Decimal
	PaidExpense decimal.Decimal
}

// Result is the income minus the expense.
func (t ReportTotals) Result() decimal.Decimal { return t.Income.Sub(t.Expense) }

// Totals computes the ReportTotals of txs.
func Totals(txs []finanflow.Transaction) ReportTotals {
	var t ReportTotals
	for _, tx := range txs {
		if tx.IsIncome() {
			t.Income = t.Income.Add(tx.Amount)
			continue
		}
		t.Expense = t.Expense.Add(tx.Amount)
		if tx.IsPaid() {
			t.PaidExpense = t.PaidExpense.Add(tx.Amount)
		}
	}
	return t
}

// cell escapes the characters that would break a markdown table cell.
var cell = strings.NewReplacer("|", `\|`, "\n", " ").Replace

// reportTableMarkdown is the transaction table of the printable report.
func reportTableMarkdown(txs []finanflow.Transaction, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"Vencimento", "Status", "Descrição", "Categoria", "Valor"},
		Rows:      [][]string{},
	}
	for _, tx := range txs {
		category := tx.Category
		if tx.Subcategory != "" {
			category = fmt.Sprintf("%s (%s)", tx.Category, tx.Subcategory)
		}
		table.Rows = append(table.Rows, []string{
			tx.DueDate.Format("02/01/2006"),
			statusLabel(tx.Status),
			cell(tx.Description),
			cell(category),
			signedAmount(tx, cur),
		})
	}
	doc.Table(table)
	return doc.String()
}

// HTMLReport writes a printable HTML report of txs: the totals followed by
// every transaction.
func HTMLReport(w io.Writer, txs []finanflow.Transaction, generated time.Time, cur string) error {
	var table bytes.Buffer
	converter := goldmark.New(goldmark.WithExtensions(extension.Table))
	if err := converter.Convert([]byte(reportTableMarkdown(txs, cur)), &table); err != nil {
		return fmt.Errorf("could not convert the report table: %w", err)
	}

	t := Totals(txs)
	return reportPage.Execute(w, struct {
		Generated                            string
		Income, Expense, PaidExpense, Result string
		Table                                template.HTML
	}{
		Generated:   generated.Format("02/01/2006 às 15:04:05"),
		Income:      amount(t.Income, cur),
		Expense:     amount(t.Expense, cur),
		PaidExpense: amount(t.PaidExpense, cur),
		Result:      amount(t.Result(), cur),
		Table:       template.HTML(table.String()),
	})
}
