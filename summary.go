package finanflow

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// FinancialSummary is the at-a-glance state of the ledger.
//
// Balance only reflects settled movements, pending ones are accounted in
// PendingIncome and PendingExpense.
type FinancialSummary struct {
	TotalIncome    decimal.Decimal // paid income
	TotalExpense   decimal.Decimal // paid expense
	Balance        decimal.Decimal // TotalIncome - TotalExpense
	PendingIncome  decimal.Decimal
	PendingExpense decimal.Decimal
}

// Forecast is the balance adjusted for known pending inflows and outflows.
func (s FinancialSummary) Forecast() decimal.Decimal {
	return s.Balance.Add(s.PendingIncome).Sub(s.PendingExpense)
}

// Summarize walks all transactions once and computes their FinancialSummary.
func Summarize(txs []Transaction) FinancialSummary {
	var s FinancialSummary
	for _, tx := range txs {
		switch {
		case tx.IsIncome() && tx.IsPaid():
			s.TotalIncome = s.TotalIncome.Add(tx.Amount)
			s.Balance = s.Balance.Add(tx.Amount)
		case tx.IsIncome():
			s.PendingIncome = s.PendingIncome.Add(tx.Amount)
		case tx.IsPaid():
			s.TotalExpense = s.TotalExpense.Add(tx.Amount)
			s.Balance = s.Balance.Sub(tx.Amount)
		default:
			s.PendingExpense = s.PendingExpense.Add(tx.Amount)
		}
	}
	return s
}

// MonthTotal holds the income and expense booked in a month, whatever their status.
type MonthTotal struct {
	Year    int
	Month   time.Month
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Label returns the month as "M/YYYY".
func (m MonthTotal) Label() string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format("1/2006")
}

// MonthlySeries groups transactions by month of their booking date, in
// chronological order.
func MonthlySeries(txs []Transaction) []MonthTotal {
	type key struct {
		y int
		m time.Month
	}
	months := make(map[key]*MonthTotal)
	for _, tx := range txs {
		k := key{tx.Date.Year(), tx.Date.Month()}
		mt, ok := months[k]
		if !ok {
			mt = &MonthTotal{Year: k.y, Month: k.m}
			months[k] = mt
		}
		if tx.IsIncome() {
			mt.Income = mt.Income.Add(tx.Amount)
		} else {
			mt.Expense = mt.Expense.Add(tx.Amount)
		}
	}

	series := make([]MonthTotal, 0, len(months))
	for _, mt := range months {
		series = append(series, *mt)
	}
	slices.SortFunc(series, func(a, b MonthTotal) int {
		return cmp.Or(cmp.Compare(a.Year, b.Year), cmp.Compare(a.Month, b.Month))
	})
	return series
}

// CategoryTotal is the total expense of a category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// CategoryBreakdown sums expenses per category, largest cost center first.
// Categories with the same total are ordered by name.
func CategoryBreakdown(txs []Transaction) []CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		if !tx.IsExpense() {
			continue
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}

	breakdown := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		breakdown = append(breakdown, CategoryTotal{Category: category, Total: total})
	}
	slices.SortFunc(breakdown, func(a, b CategoryTotal) int {
		return cmp.Or(b.Total.Cmp(a.Total), cmp.Compare(a.Category, b.Category))
	})
	return breakdown
}
