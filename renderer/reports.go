package renderer

import (
	"bytes"

	"github.com/etnz/finanflow"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// MonthlyMarkdown renders the income and expense of each month.
func MonthlyMarkdown(series []finanflow.MonthTotal, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Fluxo de Caixa Mensal")
	if len(series) == 0 {
		doc.PlainText("Sem dados suficientes.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Mês", "Receitas", "Despesas", "Resultado"},
		Rows:      [][]string{},
	}
	for _, m := range series {
		table.Rows = append(table.Rows, []string{
			m.Label(),
			amount(m.Income, cur),
			amount(m.Expense, cur),
			finanflow.M(m.Income.Sub(m.Expense), cur).SignedString(),
		})
	}
	doc.Table(table)
	return doc.String()
}

// CategoriesMarkdown renders the expense per category with its share of the
// total expense.
func CategoriesMarkdown(breakdown []finanflow.CategoryTotal, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Despesas por Categoria")
	if len(breakdown) == 0 {
		doc.PlainText("Nenhuma despesa registrada.")
		return doc.String()
	}

	total := decimal.Zero
	for _, c := range breakdown {
		total = total.Add(c.Total)
	}
	hundred := decimal.NewFromInt(100)

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Categoria", "Total", "Parcela"},
		Rows:      [][]string{},
	}
	for _, c := range breakdown {
		share := decimal.Zero
		if !total.IsZero() {
			share = c.Total.Mul(hundred).Div(total).Round(1)
		}
		table.Rows = append(table.Rows, []string{c.Category, amount(c.Total, cur), share.StringFixed(1) + "%"})
	}
	doc.Table(table)
	return doc.String()
}
