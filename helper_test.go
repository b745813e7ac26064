package finanflow

import (
	"strconv"

	"github.com/etnz/finanflow/date"
	"github.com/shopspring/decimal"
)

// BRL is a helper for test to create an amount from a const.
func BRL(v string) decimal.Decimal { return decimal.RequireFromString(v) }

// sale is a helper for test to create a paid course sale.
func sale(id, day, amount string) Transaction {
	d := date.MustParse(day)
	return Transaction{
		ID:          id,
		Description: "Venda " + id,
		Amount:      BRL(amount),
		Type:        Income,
		Category:    CategoryRevenue,
		Subcategory: "Venda de Cursos",
		Date:        d,
		DueDate:     d,
		Status:      Paid,
	}
}

// expense is a helper for test to create an expense.
func expense(id, day, due, amount string, status Status) Transaction {
	return Transaction{
		ID:          id,
		Description: "Despesa " + id,
		Amount:      BRL(amount),
		Type:        Expense,
		Category:    "Administrativo",
		Subcategory: "Impostos",
		Date:        date.MustParse(day),
		DueDate:     date.MustParse(due),
		Status:      status,
	}
}

// sequentialIDs returns an id generator yielding "id1", "id2", ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return "id" + strconv.Itoa(n)
	}
}
