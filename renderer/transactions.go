package renderer

import (
	"bytes"

	"github.com/etnz/finanflow"
	"github.com/etnz/finanflow/date"
	md "github.com/nao1215/markdown"
)

// TransactionsMarkdown renders txs as a table. Pending items past their due
// date as of today are marked overdue.
func TransactionsMarkdown(txs []finanflow.Transaction, today date.Date, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Lançamentos")
	if len(txs) == 0 {
		doc.PlainText("Nenhuma transação encontrada.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"Data", "Vencimento", "Descrição", "Categoria", "Valor", "Status", "ID"},
		Rows:   [][]string{},
	}
	for _, tx := range txs {
		status := statusLabel(tx.Status)
		if tx.IsOverdue(today) {
			status = md.Bold("VENCIDO")
		}
		desc := tx.Description
		if tx.CommissionPaid {
			desc += " (comissão paga)"
		}
		table.Rows = append(table.Rows, []string{
			tx.Date.String(),
			tx.DueDate.String(),
			desc,
			categoryLabel(tx),
			signedAmount(tx, cur),
			status,
			tx.ID,
		})
	}
	doc.Table(table)
	return doc.String()
}
