package finanflow

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/finanflow/date"
	"github.com/shopspring/decimal"
)

var (
	// ErrNoReceiver rejects a launch without a selected receiver.
	ErrNoReceiver = errors.New("selecione um membro da equipe primeiro")
	// ErrNoSales rejects a launch without selected sales.
	ErrNoSales = errors.New("nenhuma venda selecionada para calcular")
	// ErrReceiverNotFound is returned when a receiver id is unknown.
	ErrReceiverNotFound = errors.New("receiver not found")
)

// IsSale reports whether an income is a sale that entitles to a commission.
//
// The rule is loose on purpose: any income booked as revenue, or whose
// subcategory mentions a sale ("Venda") or an enrollment ("Matrícula").
// It is the single place to change what counts as a sale.
var IsSale = func(tx Transaction) bool {
	return tx.Category == CategoryRevenue ||
		strings.Contains(tx.Subcategory, "Venda") ||
		strings.Contains(tx.Subcategory, "Matrícula")
}

// IsEligibleSale reports whether tx can be included in a new commission batch.
func IsEligibleSale(tx Transaction) bool {
	return tx.IsIncome() && !tx.CommissionPaid && IsSale(tx)
}

// EligibleSales returns the sales awaiting a commission, most recent first.
func EligibleSales(txs []Transaction) []Transaction {
	var sales []Transaction
	for _, tx := range txs {
		if IsEligibleSale(tx) {
			sales = append(sales, tx)
		}
	}
	slices.SortStableFunc(sales, func(a, b Transaction) int { return b.Date.Compare(a.Date) })
	return sales
}

// IsCommissionExpense reports whether tx is a commission payout.
func IsCommissionExpense(tx Transaction) bool {
	return tx.IsExpense() && tx.Category == CategoryCommercial && tx.Subcategory == SubcategoryCommission
}

// CommissionHistory returns the commission payouts, most recent first.
func CommissionHistory(txs []Transaction) []Transaction {
	var history []Transaction
	for _, tx := range txs {
		if IsCommissionExpense(tx) {
			history = append(history, tx)
		}
	}
	slices.SortStableFunc(history, func(a, b Transaction) int { return b.Date.Compare(a.Date) })
	return history
}

// ResolveRate returns the override rate when it is a valid number, the
// receiver's default rate otherwise.
func ResolveRate(override string, r Receiver) decimal.Decimal {
	if rate, err := ParseRate(override); err == nil {
		return rate
	}
	return r.DefaultRate
}

// SalesBase sums the amounts of sales, unrounded.
func SalesBase(sales []Transaction) decimal.Decimal {
	base := decimal.Zero
	for _, tx := range sales {
		base = base.Add(tx.Amount)
	}
	return base
}

// CommissionAmount computes rate percent of the total of sales. Rounding to
// cents happens once, on the final value.
func CommissionAmount(sales []Transaction, rate decimal.Decimal) decimal.Decimal {
	return round2(SalesBase(sales).Mul(rate).Div(decimal.NewFromInt(100)))
}

// CommissionDescription is the description of the expense paying r.
func CommissionDescription(r Receiver) string { return "Comissão - " + r.Name }

// NewCommissionExpense builds the pending expense paying amount to r, due today.
func NewCommissionExpense(r Receiver, amount decimal.Decimal, sources []string, today date.Date) Transaction {
	return Transaction{
		Description:    CommissionDescription(r),
		Amount:         amount,
		Type:           Expense,
		Category:       CategoryCommercial,
		Subcategory:    SubcategoryCommission,
		Date:           today,
		DueDate:        today,
		Status:         Pending,
		CommissionPaid: false,
		ReceiverID:     r.ID,
		SourceSales:    slices.Clone(sources),
	}
}

// Quote is a computed, not yet launched, commission.
type Quote struct {
	Receiver Receiver
	Sales    []Transaction   // selected sales, in selection order
	Base     decimal.Decimal // total of the sales
	Rate     decimal.Decimal // percentage applied
	Amount   decimal.Decimal // commission, rounded to cents
}

// SaleIDs returns the ids of the quoted sales.
func (q Quote) SaleIDs() []string {
	ids := make([]string, len(q.Sales))
	for i, tx := range q.Sales {
		ids[i] = tx.ID
	}
	return ids
}

// QuoteCommission computes the commission owed to r on the sales with ids,
// at the override rate if it is a number, at r's default rate otherwise.
//
// It returns a ValidationError if r is unset, ids is empty, or any id is not
// an eligible sale of txs.
func QuoteCommission(txs []Transaction, r *Receiver, ids []string, override string) (Quote, error) {
	if r == nil {
		return Quote{}, rejected(ErrNoReceiver)
	}
	if len(ids) == 0 {
		return Quote{}, rejected(ErrNoSales)
	}

	var problems []string
	sales := make([]Transaction, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		i := slices.IndexFunc(txs, func(tx Transaction) bool { return tx.ID == id })
		switch {
		case i < 0:
			problems = append(problems, fmt.Sprintf("sale %q not found", id))
		case !IsEligibleSale(txs[i]):
			problems = append(problems, fmt.Sprintf("%q is not a sale awaiting a commission", txs[i].Description))
		default:
			sales = append(sales, txs[i])
		}
	}
	if len(problems) > 0 {
		return Quote{}, &ValidationError{Problems: problems}
	}

	rate := ResolveRate(override, *r)
	return Quote{
		Receiver: *r,
		Sales:    sales,
		Base:     SalesBase(sales),
		Rate:     rate,
		Amount:   CommissionAmount(sales, rate),
	}, nil
}

// LaunchCommission commits q on the ledger: every quoted sale is marked as
// commission paid and a pending commission expense is inserted, in a single
// ledger update. It returns the inserted expense.
//
// The quote is checked again against the current ledger, a quoted sale
// that is no longer eligible rejects the whole launch.
func (l *Ledger) LaunchCommission(q Quote, today date.Date) (Transaction, error) {
	var r *Receiver
	if q.Receiver.ID != "" {
		r = &q.Receiver
	}
	fresh, err := QuoteCommission(l.transactions, r, q.SaleIDs(), q.Rate.String())
	if err != nil {
		return Transaction{}, err
	}
	ids := fresh.SaleIDs()
	expense := NewCommissionExpense(fresh.Receiver, fresh.Amount, ids, today)
	expense, _ = l.settle(expense, ids)
	return expense, nil
}

// CommissionBatch returns the sales that funded the commission expense with
// this id. It only knows about batches launched with their sources recorded.
func (l *Ledger) CommissionBatch(expenseID string) ([]Transaction, bool) {
	expense, ok := l.Get(expenseID)
	if !ok || !IsCommissionExpense(expense) || len(expense.SourceSales) == 0 {
		return nil, false
	}
	var sales []Transaction
	for _, id := range expense.SourceSales {
		if tx, ok := l.Get(id); ok {
			sales = append(sales, tx)
		}
	}
	return sales, true
}
