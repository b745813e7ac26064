// Package renderer renders finanflow projections as markdown, CSV and HTML.
package renderer

import (
	"bytes"
	"io"

	"github.com/etnz/finanflow"
	"github.com/shopspring/decimal"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

func amount(d decimal.Decimal, cur string) string { return finanflow.M(d, cur).String() }

// signedAmount shows incomes as positive and expenses as negative.
func signedAmount(tx finanflow.Transaction, cur string) string {
	m := finanflow.M(tx.Amount, cur)
	if tx.IsExpense() {
		m = m.Neg()
	}
	return m.SignedString()
}

func statusLabel(s finanflow.Status) string {
	if s == finanflow.Paid {
		return "PAGO"
	}
	return "PENDENTE"
}

func typeLabel(t finanflow.Type) string {
	if t == finanflow.Income {
		return "Receita"
	}
	return "Despesa"
}

func categoryLabel(tx finanflow.Transaction) string {
	if tx.Subcategory == "" {
		return tx.Category
	}
	return tx.Category + " / " + tx.Subcategory
}
