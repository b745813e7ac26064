package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/finanflow"
	md "github.com/nao1215/markdown"
)

// EligibleSalesMarkdown renders the sales awaiting a commission, marking the
// selected ones.
func EligibleSalesMarkdown(sales []finanflow.Transaction, selected func(id string) bool, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Vendas Pendentes de Comissão")
	if len(sales) == 0 {
		doc.PlainText("Nenhuma venda pendente de comissão.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"", "Data", "Descrição", "Valor", "ID"},
		Rows:      [][]string{},
	}
	for _, tx := range sales {
		mark := "[ ]"
		if selected != nil && selected(tx.ID) {
			mark = "[x]"
		}
		table.Rows = append(table.Rows, []string{mark, tx.Date.String(), tx.Description, amount(tx.Amount, cur), tx.ID})
	}
	doc.Table(table)
	return doc.String()
}

// QuoteMarkdown renders a computed commission before it is launched.
func QuoteMarkdown(q finanflow.Quote, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(finanflow.CommissionDescription(q.Receiver))
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Comissão a Pagar"), md.Bold(amount(q.Amount, cur))},
		Rows: [][]string{
			{"Vendas Selecionadas", fmt.Sprint(len(q.Sales))},
			{"Base de Cálculo", amount(q.Base, cur)},
			{"Taxa", finanflow.FormatRate(q.Rate)},
		},
	})

	items := make([]string, len(q.Sales))
	for i, tx := range q.Sales {
		items[i] = fmt.Sprintf("%s %s: %s", tx.Date, tx.Description, amount(tx.Amount, cur))
	}
	doc.H2("Vendas")
	doc.BulletList(items...)
	return doc.String()
}

// CommissionHistoryMarkdown renders the launched commissions.
func CommissionHistoryMarkdown(history []finanflow.Transaction, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Histórico de Comissões")
	if len(history) == 0 {
		doc.PlainText("Nenhuma comissão lançada.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignLeft, md.AlignLeft},
		Header:    []string{"Data", "Descrição", "Vendas", "Valor", "Status", "ID"},
		Rows:      [][]string{},
	}
	for _, tx := range history {
		sales := "-"
		if len(tx.SourceSales) > 0 {
			sales = fmt.Sprint(len(tx.SourceSales))
		}
		table.Rows = append(table.Rows, []string{
			tx.Date.String(), tx.Description, sales, amount(tx.Amount, cur), statusLabel(tx.Status), tx.ID,
		})
	}
	doc.Table(table)
	return doc.String()
}

// BatchMarkdown renders a commission expense with the sales that funded it.
func BatchMarkdown(expense finanflow.Transaction, sales []finanflow.Transaction, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s: %s", expense.Description, amount(expense.Amount, cur)))
	doc.PlainText(fmt.Sprintf("Lançada em %s, %s.", expense.Date, statusLabel(expense.Status)))
	items := make([]string, len(sales))
	for i, tx := range sales {
		items[i] = fmt.Sprintf("%s %s: %s (%s)", tx.Date, tx.Description, amount(tx.Amount, cur), tx.ID)
	}
	doc.H2("Vendas")
	doc.BulletList(items...)
	return doc.String()
}
