package renderer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/etnz/finanflow"
	"github.com/etnz/finanflow/date"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the financial summary.
func SummaryMarkdown(s finanflow.FinancialSummary, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Resumo Financeiro")
	doc.Table(summaryTable(s, cur))
	return doc.String()
}

func summaryTable(s finanflow.FinancialSummary, cur string) md.TableSet {
	return md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Saldo em Caixa"), md.Bold(amount(s.Balance, cur))},
		Rows: [][]string{
			{"Receitas Recebidas", amount(s.TotalIncome, cur)},
			{"Despesas Pagas", amount(s.TotalExpense, cur)},
			{"A Receber", amount(s.PendingIncome, cur)},
			{"A Pagar", amount(s.PendingExpense, cur)},
			{"Previsão de Caixa", amount(s.Forecast(), cur)},
		},
	}
}

// DashboardMarkdown renders the summary followed by the due alerts, if any.
func DashboardMarkdown(s finanflow.FinancialSummary, alerts []finanflow.Alert, today date.Date, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Painel em %s", today))
	doc.Table(summaryTable(s, cur))
	out := doc.String()

	var b bytes.Buffer
	b.WriteString(out)
	ConditionalBlock(&b, func(w io.Writer) bool {
		if len(alerts) == 0 {
			return false
		}
		io.WriteString(w, "\n")
		io.WriteString(w, AlertsMarkdown(alerts, cur))
		return true
	})
	return b.String()
}
