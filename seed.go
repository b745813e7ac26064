package finanflow

import (
	"github.com/etnz/finanflow/date"
	"github.com/shopspring/decimal"
)

// SeedTransactions returns the example transactions a fresh ledger starts
// with, all booked today.
func SeedTransactions(today date.Date) []Transaction {
	return []Transaction{
		{
			ID:          "1",
			Description: "Venda Curso Básico - Turma A",
			Amount:      decimal.NewFromInt(15000),
			Type:        Income,
			Category:    CategoryRevenue,
			Subcategory: "Venda de Cursos",
			Date:        today,
			DueDate:     today,
			Status:      Paid,
		},
		{
			ID:          "2",
			Description: "Facebook Ads - Campanha Lançamento",
			Amount:      decimal.NewFromInt(3200),
			Type:        Expense,
			Category:    "Marketing & Tráfego",
			Subcategory: "Facebook/Instagram Ads",
			Date:        today,
			DueDate:     today,
			Status:      Paid,
		},
	}
}
