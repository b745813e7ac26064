package finanflow

import (
	"slices"

	"github.com/etnz/finanflow/date"
)

// AlertWindow is the number of days ahead of today a pending due date raises an alert.
const AlertWindow = 3

// AlertKind tells how urgent a due date is.
type AlertKind int

const (
	Upcoming AlertKind = iota
	DueToday
	Overdue
)

func (k AlertKind) String() string {
	switch k {
	case Overdue:
		return "overdue"
	case DueToday:
		return "due today"
	default:
		return "upcoming"
	}
}

// Alert is a pending transaction whose due date is past or close.
type Alert struct {
	Transaction
	Kind AlertKind
	Days int // days from today to the due date, negative when overdue
}

// DueAlerts selects pending transactions due on or before today+AlertWindow,
// sorted by ascending due date.
func DueAlerts(txs []Transaction, today date.Date) []Alert {
	limit := today.Add(AlertWindow)
	var alerts []Alert
	for _, tx := range txs {
		if tx.IsPaid() || tx.DueDate.After(limit) {
			continue
		}
		a := Alert{Transaction: tx, Days: today.DaysUntil(tx.DueDate)}
		switch {
		case tx.DueDate.Before(today):
			a.Kind = Overdue
		case tx.DueDate == today:
			a.Kind = DueToday
		default:
			a.Kind = Upcoming
		}
		alerts = append(alerts, a)
	}
	slices.SortStableFunc(alerts, func(a, b Alert) int { return a.DueDate.Compare(b.DueDate) })
	return alerts
}
