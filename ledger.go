package finanflow

import (
	"iter"
	"slices"

	"github.com/google/uuid"
)

// Ledger is the ordered collection of transactions.
//
// Transactions are kept in insertion order. Every mutation bumps the ledger
// version, which lets projections computed from a previous snapshot detect
// that they are stale.
//
// Mutations referencing an unknown id are no-ops, they report it by returning
// false rather than an error.
type Ledger struct {
	transactions []Transaction
	version      uint64
	newID        func() string
}

// NewLedger creates a ledger holding txs.
func NewLedger(txs ...Transaction) *Ledger {
	l := &Ledger{
		transactions: make([]Transaction, 0, len(txs)),
		newID:        uuid.NewString,
	}
	for _, tx := range txs {
		l.transactions = append(l.transactions, tx.clone())
	}
	return l
}

// Version returns a counter incremented on every mutation.
func (l *Ledger) Version() uint64 { return l.version }

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Snapshot returns a copy of all transactions in ledger order.
func (l *Ledger) Snapshot() []Transaction {
	s := make([]Transaction, len(l.transactions))
	for i, tx := range l.transactions {
		s[i] = tx.clone()
	}
	return s
}

// Transactions returns an iterator that yields, in ledger order, each
// transaction accepted by all the filters.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			accept := true
			for _, filter := range filters {
				if !filter(tx) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx.clone()) {
				return
			}
		}
	}
}

// Get returns the transaction with this id.
func (l *Ledger) Get(id string) (Transaction, bool) {
	i := l.index(id)
	if i < 0 {
		return Transaction{}, false
	}
	return l.transactions[i].clone(), true
}

func (l *Ledger) index(id string) int {
	return slices.IndexFunc(l.transactions, func(tx Transaction) bool { return tx.ID == id })
}

// Create appends tx with a fresh id, the id of tx is ignored.
func (l *Ledger) Create(tx Transaction) Transaction {
	tx = tx.clone()
	tx.ID = l.newID()
	l.transactions = append(l.transactions, tx)
	l.version++
	return tx.clone()
}

// Update replaces the transaction that has the same id as tx.
func (l *Ledger) Update(tx Transaction) (applied bool) {
	i := l.index(tx.ID)
	if i < 0 {
		return false
	}
	l.transactions[i] = tx.clone()
	l.version++
	return true
}

// Delete removes the transaction with this id.
func (l *Ledger) Delete(id string) (applied bool) {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.transactions = slices.Delete(l.transactions, i, i+1)
	l.version++
	return true
}

// ToggleStatus flips the status of the transaction with this id between PAID and PENDING.
func (l *Ledger) ToggleStatus(id string) (applied bool) {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.transactions[i].Status = l.transactions[i].Status.Toggle()
	l.version++
	return true
}

// settle marks every source sale as commission paid and appends the expense,
// as a single state transition: the new collection is built aside and swapped
// in at once. It returns the stored expense and the number of sales marked.
func (l *Ledger) settle(expense Transaction, sources []string) (Transaction, int) {
	next := make([]Transaction, 0, len(l.transactions)+1)
	marked := 0
	for _, tx := range l.transactions {
		if slices.Contains(sources, tx.ID) {
			tx.CommissionPaid = true
			marked++
		}
		next = append(next, tx)
	}
	expense = expense.clone()
	expense.ID = l.newID()
	next = append(next, expense)

	l.transactions = next
	l.version++
	return expense.clone(), marked
}

// Merge inserts txs in a single update. A transaction whose id is already in
// the ledger replaces it in place, others are appended, given a fresh id
// when they have none.
func (l *Ledger) Merge(txs []Transaction) (added, replaced int) {
	if len(txs) == 0 {
		return 0, 0
	}
	for _, tx := range txs {
		tx = tx.clone()
		if tx.ID == "" {
			tx.ID = l.newID()
		}
		if i := l.index(tx.ID); i >= 0 {
			l.transactions[i] = tx
			replaced++
			continue
		}
		l.transactions = append(l.transactions, tx)
		added++
	}
	l.version++
	return added, replaced
}
