package finanflow

import (
	"errors"
	"testing"

	"github.com/etnz/finanflow/date"
	"github.com/google/go-cmp/cmp"
)

func TestDraft_Flow(t *testing.T) {
	l := newTestLedger(
		sale("a", "2025-03-01", "600"),
		sale("b", "2025-03-02", "400"),
	)
	d := NewDraft()
	step := func(want DraftState) {
		t.Helper()
		if d.State() != want {
			t.Fatalf("State() = %s, want %s", d.State(), want)
		}
	}

	step(NoReceiverSelected)
	if err := d.SelectReceiver(ana); err != nil {
		t.Fatal(err)
	}
	step(ReceiverSelected)
	d.ToggleSale("a")
	d.ToggleSale("b")
	step(SalesSelected)
	d.SetRate("12")

	q, err := d.Prepare(l.Snapshot())
	if err != nil {
		t.Fatalf("Prepare() failed: %v", err)
	}
	step(PendingConfirmation)
	if !q.Amount.Equal(BRL("120")) {
		t.Errorf("quoted amount = %s, want 120", q.Amount)
	}

	if err := d.ToggleSale("a"); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("ToggleSale() while pending error = %v, want %v", err, ErrIllegalTransition)
	}

	exp, err := d.Confirm(func(q Quote) (Transaction, error) {
		return l.LaunchCommission(q, date.New(2025, 3, 10))
	})
	if err != nil {
		t.Fatalf("Confirm() failed: %v", err)
	}
	step(Committed)
	if !exp.Amount.Equal(BRL("120")) {
		t.Errorf("launched amount = %s, want 120", exp.Amount)
	}
	if len(d.Selected()) != 0 {
		t.Errorf("Selected() after commit = %v, want empty", d.Selected())
	}

	// a committed draft starts over, keeping its receiver.
	if err := d.ToggleSale("c"); err != nil {
		t.Fatal(err)
	}
	step(SalesSelected)
}

func TestDraft_PrepareRejections(t *testing.T) {
	l := newTestLedger(sale("a", "2025-03-01", "600"))

	d := NewDraft()
	d.ToggleSale("a")
	if _, err := d.Prepare(l.Snapshot()); !errors.Is(err, ErrNoReceiver) {
		t.Errorf("Prepare() without receiver error = %v, want %v", err, ErrNoReceiver)
	}
	if d.State() != NoReceiverSelected {
		t.Errorf("State() = %s, a rejected prepare must not move", d.State())
	}

	d = NewDraft()
	d.SelectReceiver(ana)
	if _, err := d.Prepare(l.Snapshot()); !errors.Is(err, ErrNoSales) {
		t.Errorf("Prepare() without sales error = %v, want %v", err, ErrNoSales)
	}
}

func TestDraft_Cancel(t *testing.T) {
	l := newTestLedger(sale("a", "2025-03-01", "600"))
	d := NewDraft()
	d.SelectReceiver(ana)
	d.ToggleSale("a")

	if err := d.Cancel(); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("Cancel() before prepare error = %v, want %v", err, ErrIllegalTransition)
	}
	if _, err := d.Prepare(l.Snapshot()); err != nil {
		t.Fatal(err)
	}
	if err := d.Cancel(); err != nil {
		t.Fatal(err)
	}
	if d.State() != SalesSelected {
		t.Errorf("State() after cancel = %s, want %s", d.State(), SalesSelected)
	}
	if diff := cmp.Diff([]string{"a"}, d.Selected()); diff != "" {
		t.Errorf("Selected() after cancel mismatch (-want +got):\n%s", diff)
	}
	if l.Version() != 0 {
		t.Error("cancel must not touch the ledger")
	}
}

func TestDraft_ConfirmFailureStaysPending(t *testing.T) {
	l := newTestLedger(sale("a", "2025-03-01", "600"))
	d := NewDraft()
	d.SelectReceiver(ana)
	d.ToggleSale("a")
	d.Prepare(l.Snapshot())

	boom := errors.New("boom")
	if _, err := d.Confirm(func(Quote) (Transaction, error) { return Transaction{}, boom }); !errors.Is(err, boom) {
		t.Errorf("Confirm() error = %v, want %v", err, boom)
	}
	if d.State() != PendingConfirmation {
		t.Errorf("State() = %s, want %s", d.State(), PendingConfirmation)
	}
}

func TestDraft_SelectAll(t *testing.T) {
	eligible := []Transaction{sale("a", "2025-03-01", "1"), sale("b", "2025-03-02", "2")}
	d := NewDraft()
	d.SelectReceiver(ana)
	d.ToggleSale("a")

	d.SelectAll(eligible)
	if diff := cmp.Diff([]string{"a", "b"}, d.Selected()); diff != "" {
		t.Errorf("SelectAll() mismatch (-want +got):\n%s", diff)
	}
	d.SelectAll(eligible)
	if len(d.Selected()) != 0 || d.State() != ReceiverSelected {
		t.Errorf("second SelectAll() = %v in %s, want an empty selection", d.Selected(), d.State())
	}
}

func TestDraft_SelectAll_StaleSelection(t *testing.T) {
	d := NewDraft()
	d.SelectReceiver(ana)
	d.ToggleSale("x")
	d.ToggleSale("y")

	eligible := []Transaction{sale("p", "2025-03-01", "1"), sale("q", "2025-03-02", "2")}
	d.SelectAll(eligible)
	if diff := cmp.Diff([]string{"p", "q"}, d.Selected()); diff != "" {
		t.Errorf("SelectAll() over a stale selection mismatch (-want +got):\n%s", diff)
	}
	d.SelectAll(eligible)
	if len(d.Selected()) != 0 {
		t.Errorf("second SelectAll() = %v, want an empty selection", d.Selected())
	}
}
