package finanflow

import "github.com/etnz/finanflow/date"

// Views memoizes the projections of a ledger. A projection is recomputed
// only when the ledger version changed since it was last computed, or, for
// alerts, when the day changed.
//
// Returned slices are shared between calls and must not be modified.
type Views struct {
	ledger *Ledger

	summary    memo[FinancialSummary]
	monthly    memo[[]MonthTotal]
	categories memo[[]CategoryTotal]
	eligible   memo[[]Transaction]
	history    memo[[]Transaction]
	visible    memo[[]Transaction]

	alerts      memo[[]Alert]
	alertsToday date.Date
}

// memo is a value computed at a given ledger version.
type memo[T any] struct {
	valid   bool
	version uint64
	value   T
}

func (m *memo[T]) get(version uint64, compute func() T) T {
	if !m.valid || m.version != version {
		m.value = compute()
		m.version = version
		m.valid = true
	}
	return m.value
}

// NewViews returns the projections of l.
func NewViews(l *Ledger) *Views { return &Views{ledger: l} }

func (v *Views) snapshot() []Transaction { return v.ledger.transactions }

// Summary returns the FinancialSummary of the ledger.
func (v *Views) Summary() FinancialSummary {
	return v.summary.get(v.ledger.version, func() FinancialSummary { return Summarize(v.snapshot()) })
}

// MonthlySeries returns the income and expense per month.
func (v *Views) MonthlySeries() []MonthTotal {
	return v.monthly.get(v.ledger.version, func() []MonthTotal { return MonthlySeries(v.snapshot()) })
}

// CategoryBreakdown returns the expense per category.
func (v *Views) CategoryBreakdown() []CategoryTotal {
	return v.categories.get(v.ledger.version, func() []CategoryTotal { return CategoryBreakdown(v.snapshot()) })
}

// EligibleSales returns the sales awaiting a commission.
func (v *Views) EligibleSales() []Transaction {
	return v.eligible.get(v.ledger.version, func() []Transaction { return EligibleSales(v.snapshot()) })
}

// CommissionHistory returns the commission payouts.
func (v *Views) CommissionHistory() []Transaction {
	return v.history.get(v.ledger.version, func() []Transaction { return CommissionHistory(v.snapshot()) })
}

// Visible returns the transactions of the main list: commission payouts are
// left out, the most recent first.
func (v *Views) Visible() []Transaction {
	return v.visible.get(v.ledger.version, func() []Transaction { return VisibleTransactions(v.snapshot()) })
}

// DueAlerts returns the alerts as of today.
func (v *Views) DueAlerts(today date.Date) []Alert {
	if today != v.alertsToday {
		v.alerts.valid = false
		v.alertsToday = today
	}
	return v.alerts.get(v.ledger.version, func() []Alert { return DueAlerts(v.snapshot(), today) })
}
