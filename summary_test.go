package finanflow

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestSummarize(t *testing.T) {
	pendingSale := sale("ps", "2025-03-04", "500")
	pendingSale.Status = Pending
	txs := []Transaction{
		sale("a", "2025-03-01", "1000"),
		pendingSale,
		expense("e1", "2025-03-02", "2025-03-02", "300", Paid),
		expense("e2", "2025-03-03", "2025-03-20", "120", Pending),
	}

	s := Summarize(txs)
	checks := []struct {
		name string
		got  string
		want string
	}{
		{"TotalIncome", s.TotalIncome.String(), "1000"},
		{"TotalExpense", s.TotalExpense.String(), "300"},
		{"Balance", s.Balance.String(), "700"},
		{"PendingIncome", s.PendingIncome.String(), "500"},
		{"PendingExpense", s.PendingExpense.String(), "120"},
		{"Forecast", s.Forecast().String(), "1080"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %s, want %s", c.name, c.got, c.want)
		}
	}
}

func TestSummarize_PendingNeverAffectsBalance(t *testing.T) {
	base := []Transaction{
		sale("a", "2025-03-01", "1000"),
		expense("e1", "2025-03-02", "2025-03-02", "300", Paid),
	}
	want := Summarize(base).Balance

	pendingSale := sale("ps", "2025-03-04", "999")
	pendingSale.Status = Pending
	more := append(base, pendingSale, expense("e2", "2025-03-03", "2025-03-20", "77", Pending))

	if got := Summarize(more).Balance; !got.Equal(want) {
		t.Errorf("Balance with pending items = %s, want %s", got, want)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if !s.Balance.IsZero() || !s.Forecast().IsZero() {
		t.Errorf("Summarize(nil) = %+v, want zeros", s)
	}
}

func TestMonthlySeries(t *testing.T) {
	txs := []Transaction{
		sale("a", "2025-03-01", "100"),
		expense("e", "2024-12-31", "2025-01-10", "40", Pending),
		sale("b", "2025-03-20", "50"),
		expense("f", "2025-01-02", "2025-01-02", "10", Paid),
	}

	got := MonthlySeries(txs)
	type row struct {
		Label           string
		Income, Expense string
	}
	var rows []row
	for _, m := range got {
		rows = append(rows, row{m.Label(), m.Income.String(), m.Expense.String()})
	}
	want := []row{
		{"12/2024", "0", "40"},
		{"1/2025", "0", "10"},
		{"3/2025", "150", "0"},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("MonthlySeries() mismatch (-want +got):\n%s", diff)
	}
	if got[2].Month != time.March {
		t.Errorf("third month = %v, want March", got[2].Month)
	}
}

func TestCategoryBreakdown(t *testing.T) {
	mk := func(id, category, amount string) Transaction {
		tx := expense(id, "2025-03-01", "2025-03-01", amount, Paid)
		tx.Category = category
		return tx
	}
	txs := []Transaction{
		mk("1", "Marketing & Tráfego", "300"),
		mk("2", "Administrativo", "100"),
		sale("s", "2025-03-01", "5000"),
		mk("3", "Marketing & Tráfego", "200"),
		mk("4", "Comercial", "100"),
	}

	var got []string
	for _, c := range CategoryBreakdown(txs) {
		got = append(got, c.Category+"="+c.Total.String())
	}
	want := []string{"Marketing & Tráfego=500", "Administrativo=100", "Comercial=100"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CategoryBreakdown() mismatch (-want +got):\n%s", diff)
	}
}
