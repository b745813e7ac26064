package finanflow

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/etnz/finanflow/date"
	"github.com/etnz/finanflow/internal/logger"
	"go.uber.org/zap"
)

// Book is the ledger and the team of a business, kept in a Store.
//
// Every mutation saves the whole affected slot. Saving is fire-and-forget:
// a failure is logged and the in-memory state stays the reference for the
// rest of the session.
type Book struct {
	ledger *Ledger
	team   *Registry
	views  *Views

	store Store
	log   *zap.SugaredLogger
	today func() date.Date

	// slots that could not be decoded, they are never overwritten.
	broken map[Slot]bool
}

// Option configures a Book.
type Option func(*Book)

// WithLogger sets the logger used to report persistence failures.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(b *Book) { b.log = log }
}

// WithClock sets the function returning the current day.
func WithClock(today func() date.Date) Option {
	return func(b *Book) { b.today = today }
}

// Open loads the book kept in store.
//
// A missing transactions slot starts the ledger with SeedTransactions, a
// missing receivers slot starts an empty team. A slot that cannot be read is
// logged, the book starts empty for it and never saves over it.
func Open(store Store, opts ...Option) *Book {
	b := &Book{
		store:  store,
		log:    logger.Get(),
		today:  date.Today,
		broken: make(map[Slot]bool),
	}
	for _, opt := range opts {
		opt(b)
	}

	var txs []Transaction
	seeded := false
	switch err := b.load(TransactionsSlot, func(r io.Reader) (err error) {
		txs, err = DecodeTransactions(r)
		return err
	}); {
	case errors.Is(err, fs.ErrNotExist):
		txs = SeedTransactions(b.today())
		seeded = true
	case err != nil:
		b.log.Errorw("could not load transactions", "slot", TransactionsSlot, "error", err)
		b.broken[TransactionsSlot] = true
	}

	var rs []Receiver
	switch err := b.load(ReceiversSlot, func(r io.Reader) (err error) {
		rs, err = DecodeReceivers(r)
		return err
	}); {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		b.log.Errorw("could not load team", "slot", ReceiversSlot, "error", err)
		b.broken[ReceiversSlot] = true
	}

	b.ledger = NewLedger(txs...)
	b.team = NewRegistry(rs...)
	b.views = NewViews(b.ledger)
	if seeded {
		b.saveTransactions()
	}
	return b
}

func (b *Book) load(slot Slot, decode func(io.Reader) error) error {
	r, err := b.store.Load(slot)
	if err != nil {
		return err
	}
	defer r.Close()
	if err := decode(r); err != nil {
		return fmt.Errorf("could not decode slot %q: %w", slot, err)
	}
	return nil
}

func (b *Book) save(slot Slot, write func(io.Writer) error) {
	if b.broken[slot] {
		b.log.Warnw("not saving over a slot that could not be loaded", "slot", slot)
		return
	}
	if err := b.store.Save(slot, write); err != nil {
		b.log.Errorw("could not save", "slot", slot, "error", err)
		return
	}
	b.log.Debugw("saved", "slot", slot)
}

func (b *Book) saveTransactions() {
	txs := b.ledger.Snapshot()
	b.save(TransactionsSlot, func(w io.Writer) error { return EncodeTransactions(w, txs) })
}

func (b *Book) saveReceivers() {
	rs := b.team.Snapshot()
	b.save(ReceiversSlot, func(w io.Writer) error { return EncodeReceivers(w, rs) })
}

// Ledger returns the transactions. Mutate them through the Book so that they are saved.
func (b *Book) Ledger() *Ledger { return b.ledger }

// Team returns the commission receivers. Mutate them through the Book so that they are saved.
func (b *Book) Team() *Registry { return b.team }

// Views returns the memoized projections of the ledger.
func (b *Book) Views() *Views { return b.views }

// Today returns the current day of the book's clock.
func (b *Book) Today() date.Date { return b.today() }

// Create validates tx and appends it to the ledger with a fresh id.
func (b *Book) Create(tx Transaction) (Transaction, error) {
	if err := ValidateTransaction(tx); err != nil {
		return Transaction{}, err
	}
	tx = b.ledger.Create(tx)
	b.saveTransactions()
	return tx, nil
}

// Update validates tx and replaces the transaction with the same id. An
// unknown id is not an error, it is reported by applied being false.
func (b *Book) Update(tx Transaction) (applied bool, err error) {
	if err := ValidateTransaction(tx); err != nil {
		return false, err
	}
	if !b.ledger.Update(tx) {
		return false, nil
	}
	b.saveTransactions()
	return true, nil
}

// Delete removes the transaction with this id.
func (b *Book) Delete(id string) (applied bool) {
	if !b.ledger.Delete(id) {
		return false
	}
	b.saveTransactions()
	return true
}

// ToggleStatus flips the status of the transaction with this id.
func (b *Book) ToggleStatus(id string) (applied bool) {
	if !b.ledger.ToggleStatus(id) {
		return false
	}
	b.saveTransactions()
	return true
}

// Import validates every transaction of txs then merges them into the
// ledger, see Ledger.Merge. Nothing is imported if one is invalid.
func (b *Book) Import(txs []Transaction) (added, replaced int, err error) {
	var problems []string
	for i, tx := range txs {
		if err := ValidateTransaction(tx); err != nil {
			problems = append(problems, fmt.Sprintf("record %d: %v", i+1, err))
		}
	}
	if len(problems) > 0 {
		return 0, 0, &ValidationError{Problems: problems}
	}
	added, replaced = b.ledger.Merge(txs)
	if added+replaced > 0 {
		b.log.Infow("transactions imported", "added", added, "replaced", replaced)
		b.saveTransactions()
	}
	return added, replaced, nil
}

// ImportReceivers registers the receivers of rs whose id is not already
// known. It returns the number of receivers added.
func (b *Book) ImportReceivers(rs []Receiver) (added int, err error) {
	for _, r := range rs {
		if err := ValidateReceiver(r); err != nil {
			return 0, err
		}
	}
	for _, r := range rs {
		if _, ok := b.team.Get(r.ID); ok && r.ID != "" {
			continue
		}
		b.team.Add(r)
		added++
	}
	if added > 0 {
		b.saveReceivers()
	}
	return added, nil
}

// Receiver returns the receiver with this id.
func (b *Book) Receiver(id string) (Receiver, error) {
	r, ok := b.team.Get(id)
	if !ok {
		return Receiver{}, fmt.Errorf("%q: %w", id, ErrReceiverNotFound)
	}
	return r, nil
}

// AddReceiver validates r and registers it with a fresh id.
func (b *Book) AddReceiver(r Receiver) (Receiver, error) {
	r.ID = ""
	if err := ValidateReceiver(r); err != nil {
		return Receiver{}, err
	}
	r = b.team.Add(r)
	b.saveReceivers()
	return r, nil
}

// RemoveReceiver removes the receiver with this id. Commission expenses
// already launched for them are kept.
func (b *Book) RemoveReceiver(id string) (applied bool) {
	if !b.team.Remove(id) {
		return false
	}
	b.saveReceivers()
	return true
}

// Quote computes the commission of the receiver with this id on the sales
// with ids, without launching it.
func (b *Book) Quote(receiverID string, ids []string, override string) (Quote, error) {
	var r *Receiver
	if receiverID != "" {
		rc, err := b.Receiver(receiverID)
		if err != nil {
			return Quote{}, err
		}
		r = &rc
	}
	return QuoteCommission(b.ledger.transactions, r, ids, override)
}

// LaunchCommission commits q, booking the commission expense today.
func (b *Book) LaunchCommission(q Quote) (Transaction, error) {
	expense, err := b.ledger.LaunchCommission(q, b.today())
	if err != nil {
		return Transaction{}, err
	}
	b.log.Infow("commission launched",
		"receiver", q.Receiver.Name,
		"sales", len(expense.SourceSales),
		"amount", expense.Amount.StringFixed(2))
	b.saveTransactions()
	return expense, nil
}
