package finanflow

import (
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/finanflow/date"
	"github.com/shopspring/decimal"
)

// Type tells whether a transaction brings money in or takes it out.
type Type string

const (
	Income  Type = "INCOME"
	Expense Type = "EXPENSE"
)

// ParseType parses a transaction type, accepting lower case.
func ParseType(s string) (Type, error) {
	switch Type(strings.ToUpper(strings.TrimSpace(s))) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Status is the settlement status of a transaction.
type Status string

const (
	Paid    Status = "PAID"
	Pending Status = "PENDING"
)

// ParseStatus parses a payment status, accepting lower case.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToUpper(strings.TrimSpace(s))) {
	case Paid:
		return Paid, nil
	case Pending:
		return Pending, nil
	default:
		return "", fmt.Errorf("unknown payment status: %q", s)
	}
}

// Toggle returns the opposite status.
func (s Status) Toggle() Status {
	if s == Paid {
		return Pending
	}
	return Paid
}

// Transaction is a single income or expense record of the ledger.
//
// Fields are encoded in declaration order, so saved slots diff nicely.
type Transaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"gte=0"`
	Type        Type            `json:"type" validate:"oneof=INCOME EXPENSE"`
	Category    string          `json:"category" validate:"required"`
	Subcategory string          `json:"subcategory"`
	Date        date.Date       `json:"date"`    // booking date
	DueDate     date.Date       `json:"dueDate"` // date the obligation is due
	Status      Status          `json:"status" validate:"oneof=PAID PENDING"`

	// CommissionPaid is set on sales once a commission batch has been launched for them.
	CommissionPaid bool `json:"commissionPaid,omitempty"`

	// ReceiverID and SourceSales are only set on commission expenses minted by a
	// launch, they record who is paid and which sales funded the payout.
	ReceiverID  string   `json:"receiverId,omitempty"`
	SourceSales []string `json:"sourceSales,omitempty"`
}

// IsIncome reports whether tx is an income.
func (tx Transaction) IsIncome() bool { return tx.Type == Income }

// IsExpense reports whether tx is an expense.
func (tx Transaction) IsExpense() bool { return tx.Type == Expense }

// IsPaid reports whether tx is settled.
func (tx Transaction) IsPaid() bool { return tx.Status == Paid }

// IsOverdue reports whether tx is still pending after its due date.
func (tx Transaction) IsOverdue(today date.Date) bool {
	return tx.Status == Pending && tx.DueDate.Before(today)
}

// Equal reports whether both transactions hold the same values.
func (tx Transaction) Equal(o Transaction) bool {
	return tx.ID == o.ID &&
		tx.Description == o.Description &&
		tx.Amount.Equal(o.Amount) &&
		tx.Type == o.Type &&
		tx.Category == o.Category &&
		tx.Subcategory == o.Subcategory &&
		tx.Date == o.Date &&
		tx.DueDate == o.DueDate &&
		tx.Status == o.Status &&
		tx.CommissionPaid == o.CommissionPaid &&
		tx.ReceiverID == o.ReceiverID &&
		slices.Equal(tx.SourceSales, o.SourceSales)
}

// clone returns a copy of tx that shares no memory with it.
func (tx Transaction) clone() Transaction {
	tx.SourceSales = slices.Clone(tx.SourceSales)
	return tx
}

// Predicates usable with Ledger.Transactions.

// AcceptAll accepts every transaction.
func AcceptAll(Transaction) bool { return true }

// ByType returns a predicate that filters transactions by type.
func ByType(t Type) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Type == t }
}

// ByStatus returns a predicate that filters transactions by status.
func ByStatus(s Status) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Status == s }
}

// ByCategory returns a predicate that filters transactions by category.
func ByCategory(category string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Category == category }
}

// ByDateRange returns a predicate that filters transactions by booking date.
func ByDateRange(r date.Range) func(Transaction) bool {
	return func(tx Transaction) bool { return r.Contains(tx.Date) }
}

// NotCommissionExpense rejects commission expenses, they are listed in the
// commission history instead.
func NotCommissionExpense(tx Transaction) bool { return !IsCommissionExpense(tx) }

// VisibleTransactions returns the transactions of the main list, commission
// expenses excluded, the most recent booking date first.
func VisibleTransactions(txs []Transaction) []Transaction {
	var list []Transaction
	for _, tx := range txs {
		if NotCommissionExpense(tx) {
			list = append(list, tx.clone())
		}
	}
	slices.SortStableFunc(list, func(a, b Transaction) int { return b.Date.Compare(a.Date) })
	return list
}
