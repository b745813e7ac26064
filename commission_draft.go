package finanflow

import (
	"errors"
	"fmt"
	"slices"
)

// ErrIllegalTransition is returned when a draft operation is not allowed in its current state.
var ErrIllegalTransition = errors.New("illegal commission draft transition")

// DraftState is the state of a commission being prepared.
type DraftState int

const (
	NoReceiverSelected DraftState = iota
	ReceiverSelected
	SalesSelected
	PendingConfirmation
	Committed
)

func (s DraftState) String() string {
	switch s {
	case NoReceiverSelected:
		return "no receiver selected"
	case ReceiverSelected:
		return "receiver selected"
	case SalesSelected:
		return "sales selected"
	case PendingConfirmation:
		return "pending confirmation"
	case Committed:
		return "committed"
	default:
		return fmt.Sprintf("DraftState(%d)", int(s))
	}
}

// Draft is the working selection of a commission before it is launched.
//
// Sales can be picked before a receiver is chosen, the draft then stays in
// NoReceiverSelected and Prepare rejects it. While a quote awaits
// confirmation the selection is frozen, it can only be confirmed or canceled.
type Draft struct {
	state    DraftState
	receiver *Receiver
	selected []string
	override string
	quote    Quote
	launched Transaction
}

// NewDraft returns an empty draft.
func NewDraft() *Draft { return &Draft{} }

// State returns the current state.
func (d *Draft) State() DraftState { return d.state }

// Receiver returns the selected receiver, if any.
func (d *Draft) Receiver() (Receiver, bool) {
	if d.receiver == nil {
		return Receiver{}, false
	}
	return *d.receiver, true
}

// Selected returns the ids of the selected sales, in selection order.
func (d *Draft) Selected() []string { return slices.Clone(d.selected) }

// IsSelected reports whether the sale with this id is selected.
func (d *Draft) IsSelected(id string) bool { return slices.Contains(d.selected, id) }

// Quote returns the quote awaiting confirmation.
func (d *Draft) Quote() (Quote, bool) {
	return d.quote, d.state == PendingConfirmation
}

// Launched returns the expense inserted by the last confirmation.
func (d *Draft) Launched() (Transaction, bool) {
	return d.launched, d.state == Committed
}

// editable fails when the selection is frozen.
func (d *Draft) editable(op string) error {
	if d.state == PendingConfirmation {
		return fmt.Errorf("%s while %s: %w", op, d.state, ErrIllegalTransition)
	}
	if d.state == Committed {
		// a committed draft starts over.
		d.selected = nil
		d.override = ""
		d.launched = Transaction{}
	}
	return nil
}

// refresh derives the state from the selection.
func (d *Draft) refresh() {
	switch {
	case d.receiver == nil:
		d.state = NoReceiverSelected
	case len(d.selected) == 0:
		d.state = ReceiverSelected
	default:
		d.state = SalesSelected
	}
}

// SelectReceiver chooses who the commission is for.
func (d *Draft) SelectReceiver(r Receiver) error {
	if err := d.editable("select receiver"); err != nil {
		return err
	}
	d.receiver = &r
	d.refresh()
	return nil
}

// ToggleSale adds the sale with this id to the selection, or removes it if
// it was already selected.
func (d *Draft) ToggleSale(id string) error {
	if err := d.editable("toggle sale"); err != nil {
		return err
	}
	if i := slices.Index(d.selected, id); i >= 0 {
		d.selected = slices.Delete(d.selected, i, i+1)
	} else {
		d.selected = append(d.selected, id)
	}
	d.refresh()
	return nil
}

// SelectAll selects every eligible sale, or clears the selection when each
// of them is already selected. Selected ids that are not eligible are dropped.
func (d *Draft) SelectAll(eligible []Transaction) error {
	if err := d.editable("select all"); err != nil {
		return err
	}
	all := len(eligible) > 0
	for _, tx := range eligible {
		if !slices.Contains(d.selected, tx.ID) {
			all = false
			break
		}
	}
	if all {
		d.selected = nil
	} else {
		d.selected = make([]string, len(eligible))
		for i, tx := range eligible {
			d.selected[i] = tx.ID
		}
	}
	d.refresh()
	return nil
}

// SetRate sets the override rate. An empty or non numeric value falls back
// to the receiver's default rate.
func (d *Draft) SetRate(override string) error {
	if err := d.editable("set rate"); err != nil {
		return err
	}
	d.override = override
	d.refresh()
	return nil
}

// Prepare computes the commission of the selection against txs and, if it is
// valid, freezes the draft until it is confirmed or canceled.
func (d *Draft) Prepare(txs []Transaction) (Quote, error) {
	if d.state == PendingConfirmation || d.state == Committed {
		return Quote{}, fmt.Errorf("prepare while %s: %w", d.state, ErrIllegalTransition)
	}
	q, err := QuoteCommission(txs, d.receiver, d.selected, d.override)
	if err != nil {
		return Quote{}, err
	}
	d.quote = q
	d.state = PendingConfirmation
	return q, nil
}

// Cancel drops the pending quote and returns to the selection.
func (d *Draft) Cancel() error {
	if d.state != PendingConfirmation {
		return fmt.Errorf("cancel while %s: %w", d.state, ErrIllegalTransition)
	}
	d.quote = Quote{}
	d.refresh()
	return nil
}

// Confirm launches the pending quote with launch and clears the selection.
// If launch fails the draft stays pending so that it can be canceled.
func (d *Draft) Confirm(launch func(Quote) (Transaction, error)) (Transaction, error) {
	if d.state != PendingConfirmation {
		return Transaction{}, fmt.Errorf("confirm while %s: %w", d.state, ErrIllegalTransition)
	}
	expense, err := launch(d.quote)
	if err != nil {
		return Transaction{}, err
	}
	d.launched = expense
	d.quote = Quote{}
	d.selected = nil
	d.state = Committed
	return expense, nil
}
