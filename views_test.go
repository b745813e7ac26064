package finanflow

import (
	"testing"

	"github.com/etnz/finanflow/date"
)

func TestViews_Memoized(t *testing.T) {
	l := newTestLedger(sale("a", "2025-03-01", "100"))
	v := NewViews(l)

	first := v.EligibleSales()
	if len(first) != 1 {
		t.Fatalf("EligibleSales() = %d sales, want 1", len(first))
	}
	again := v.EligibleSales()
	if &first[0] != &again[0] {
		t.Error("EligibleSales() recomputed although the ledger did not change")
	}

	l.Create(sale("b", "2025-03-02", "50"))
	if got := v.EligibleSales(); len(got) != 2 {
		t.Errorf("EligibleSales() after a create = %d sales, want 2", len(got))
	}
	if got := v.Summary().TotalIncome; !got.Equal(BRL("150")) {
		t.Errorf("Summary().TotalIncome = %s, want 150", got)
	}
	l.ToggleStatus("a")
	if got := v.Summary().TotalIncome; !got.Equal(BRL("50")) {
		t.Errorf("Summary().TotalIncome after a toggle = %s, want 50", got)
	}
}

func TestViews_DueAlertsFollowToday(t *testing.T) {
	l := newTestLedger(expense("e", "2025-03-01", "2025-03-14", "10", Pending))
	v := NewViews(l)

	if got := v.DueAlerts(date.New(2025, 3, 10)); len(got) != 0 {
		t.Errorf("DueAlerts(03-10) = %v, want none", got)
	}
	if got := v.DueAlerts(date.New(2025, 3, 11)); len(got) != 1 {
		t.Errorf("DueAlerts(03-11) = %v, want one", got)
	}
}

func TestViews_Visible(t *testing.T) {
	l := newTestLedger(sale("a", "2025-03-01", "1000"), sale("b", "2025-03-05", "10"))
	q, _ := QuoteCommission(l.Snapshot(), &ana, []string{"a"}, "")
	if _, err := l.LaunchCommission(q, date.New(2025, 3, 10)); err != nil {
		t.Fatalf("LaunchCommission() failed: %v", err)
	}

	v := NewViews(l)
	got := ids(v.Visible())
	if len(got) != 2 || got[0] != "b" || got[1] != "a" {
		t.Errorf("Visible() = %v, want [b a]", got)
	}
	if n := len(v.CommissionHistory()); n != 1 {
		t.Errorf("CommissionHistory() = %d entries, want 1", n)
	}
}
