package finanflow

import (
	"testing"

	"github.com/etnz/finanflow/date"
	"github.com/google/go-cmp/cmp"
)

func TestDueAlerts(t *testing.T) {
	today := date.New(2025, 3, 10)
	due := func(id string, offset int, status Status) Transaction {
		d := today.Add(offset)
		return expense(id, "2025-03-01", d.String(), "10", status)
	}
	txs := []Transaction{
		due("plus4", 4, Pending),
		due("plus3", 3, Pending),
		due("today", 0, Pending),
		due("minus1", -1, Pending),
		due("paid", -5, Paid),
		due("minus30", -30, Pending),
	}

	type row struct {
		ID   string
		Kind AlertKind
		Days int
	}
	var got []row
	for _, a := range DueAlerts(txs, today) {
		got = append(got, row{a.ID, a.Kind, a.Days})
	}
	want := []row{
		{"minus30", Overdue, -30},
		{"minus1", Overdue, -1},
		{"today", DueToday, 0},
		{"plus3", Upcoming, 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DueAlerts() mismatch (-want +got):\n%s", diff)
	}
}

func TestTransaction_IsOverdue(t *testing.T) {
	today := date.New(2025, 3, 10)
	if !expense("a", "2025-03-01", "2025-03-09", "1", Pending).IsOverdue(today) {
		t.Error("pending item due yesterday must be overdue")
	}
	if expense("b", "2025-03-01", "2025-03-09", "1", Paid).IsOverdue(today) {
		t.Error("paid item must never be overdue")
	}
	if expense("c", "2025-03-01", "2025-03-10", "1", Pending).IsOverdue(today) {
		t.Error("item due today is not overdue")
	}
}
