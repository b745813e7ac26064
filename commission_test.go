package finanflow

import (
	"errors"
	"testing"

	"github.com/etnz/finanflow/date"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

var ana = Receiver{ID: "r1", Name: "Ana", Role: "Vendedor", DefaultRate: BRL("10")}

func TestIsEligibleSale(t *testing.T) {
	testCases := []struct {
		name string
		tx   Transaction
		want bool
	}{
		{
			name: "revenue",
			tx:   Transaction{Type: Income, Category: CategoryRevenue, Subcategory: "Mentorias"},
			want: true,
		},
		{
			name: "sale subcategory",
			tx:   Transaction{Type: Income, Category: "Outros", Subcategory: "Venda Avulsa"},
			want: true,
		},
		{
			name: "enrollment subcategory",
			tx:   Transaction{Type: Income, Category: "Outros", Subcategory: "Matrículas"},
			want: true,
		},
		{
			name: "unrelated income",
			tx:   Transaction{Type: Income, Category: "Outros", Subcategory: "Juros"},
			want: false,
		},
		{
			name: "commission already paid",
			tx:   Transaction{Type: Income, Category: CategoryRevenue, CommissionPaid: true},
			want: false,
		},
		{
			name: "expense",
			tx:   Transaction{Type: Expense, Category: CategoryRevenue, Subcategory: "Venda"},
			want: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsEligibleSale(tc.tx); got != tc.want {
				t.Errorf("IsEligibleSale() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEligibleSales(t *testing.T) {
	paid := sale("p", "2025-03-05", "10")
	paid.CommissionPaid = true
	txs := []Transaction{
		sale("a", "2025-03-01", "100"),
		paid,
		expense("e", "2025-03-02", "2025-03-02", "5", Paid),
		sale("c", "2025-03-03", "300"),
	}
	if diff := cmp.Diff([]string{"c", "a"}, ids(EligibleSales(txs))); diff != "" {
		t.Errorf("EligibleSales() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveRate(t *testing.T) {
	testCases := []struct {
		override string
		want     string
	}{
		{"", "10"},
		{"abc", "10"},
		{"12.5", "12.5"},
		{"12,5", "12.5"},
		{"15%", "15"},
		{"0", "0"},
	}
	for _, tc := range testCases {
		if got := ResolveRate(tc.override, ana); !got.Equal(BRL(tc.want)) {
			t.Errorf("ResolveRate(%q) = %s, want %s", tc.override, got, tc.want)
		}
	}
}

func TestCommissionAmount(t *testing.T) {
	testCases := []struct {
		name    string
		amounts []string
		rate    string
		want    string
	}{
		{"single sale", []string{"1000.00"}, "10", "100.00"},
		{"rounded once", []string{"333.33", "333.33", "333.34"}, "15", "150.00"},
		{"half cent", []string{"0.05"}, "10", "0.01"},
		{"no sale", nil, "10", "0"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var sales []Transaction
			for _, a := range tc.amounts {
				sales = append(sales, sale("x", "2025-03-01", a))
			}
			if got := CommissionAmount(sales, BRL(tc.rate)); !got.Equal(BRL(tc.want)) {
				t.Errorf("CommissionAmount() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestQuoteCommission_Rejections(t *testing.T) {
	paid := sale("p", "2025-03-05", "10")
	paid.CommissionPaid = true
	txs := []Transaction{sale("a", "2025-03-01", "100"), paid}

	testCases := []struct {
		name     string
		receiver *Receiver
		ids      []string
		sentinel error
	}{
		{"no receiver", nil, []string{"a"}, ErrNoReceiver},
		{"no sales", &ana, nil, ErrNoSales},
		{"unknown sale", &ana, []string{"a", "zz"}, nil},
		{"already paid", &ana, []string{"p"}, nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := QuoteCommission(txs, tc.receiver, tc.ids, "")
			if !IsValidationError(err) {
				t.Fatalf("QuoteCommission() error = %v, want a validation error", err)
			}
			if tc.sentinel != nil && !errors.Is(err, tc.sentinel) {
				t.Errorf("QuoteCommission() error = %v, want %v", err, tc.sentinel)
			}
		})
	}
}

func TestQuoteCommission(t *testing.T) {
	txs := []Transaction{
		sale("a", "2025-03-01", "333.33"),
		sale("b", "2025-03-02", "333.33"),
		sale("c", "2025-03-03", "333.34"),
	}
	q, err := QuoteCommission(txs, &ana, []string{"c", "a", "b", "a"}, "15")
	if err != nil {
		t.Fatalf("QuoteCommission() failed: %v", err)
	}
	if diff := cmp.Diff([]string{"c", "a", "b"}, q.SaleIDs()); diff != "" {
		t.Errorf("SaleIDs() mismatch (-want +got):\n%s", diff)
	}
	if !q.Base.Equal(BRL("1000")) || !q.Rate.Equal(BRL("15")) || !q.Amount.Equal(BRL("150")) {
		t.Errorf("quote = base %s rate %s amount %s, want 1000 15 150", q.Base, q.Rate, q.Amount)
	}
}

func TestLedger_LaunchCommission(t *testing.T) {
	today := date.New(2025, 3, 10)
	l := newTestLedger(
		sale("a", "2025-03-01", "600"),
		sale("b", "2025-03-02", "400"),
		sale("c", "2025-03-03", "50"),
		expense("e", "2025-03-04", "2025-03-04", "30", Paid),
	)
	countPaid := func() int {
		n := 0
		for range l.Transactions(func(tx Transaction) bool { return tx.CommissionPaid }) {
			n++
		}
		return n
	}

	q, err := QuoteCommission(l.Snapshot(), &ana, []string{"a", "b"}, "")
	if err != nil {
		t.Fatalf("QuoteCommission() failed: %v", err)
	}
	before, version := countPaid(), l.Version()

	got, err := l.LaunchCommission(q, today)
	if err != nil {
		t.Fatalf("LaunchCommission() failed: %v", err)
	}

	want := Transaction{
		ID:          "id1",
		Description: "Comissão - Ana",
		Amount:      decimal.RequireFromString("100"),
		Type:        Expense,
		Category:    CategoryCommercial,
		Subcategory: SubcategoryCommission,
		Date:        today,
		DueDate:     today,
		Status:      Pending,
		ReceiverID:  "r1",
		SourceSales: []string{"a", "b"},
	}
	if !got.Equal(want) {
		t.Errorf("LaunchCommission() = %+v, want %+v", got, want)
	}
	if n := countPaid() - before; n != 2 {
		t.Errorf("commissionPaid count grew by %d, want 2", n)
	}
	if l.Version() != version+1 {
		t.Errorf("Version() = %d, want a single update (%d)", l.Version(), version+1)
	}
	if diff := cmp.Diff([]string{"id1"}, ids(CommissionHistory(l.Snapshot()))); diff != "" {
		t.Errorf("CommissionHistory() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"c"}, ids(EligibleSales(l.Snapshot()))); diff != "" {
		t.Errorf("EligibleSales() after launch mismatch (-want +got):\n%s", diff)
	}

	// the same quote cannot be launched twice.
	if _, err := l.LaunchCommission(q, today); !IsValidationError(err) {
		t.Errorf("second LaunchCommission() error = %v, want a validation error", err)
	}
	if l.Len() != 5 {
		t.Errorf("Len() = %d, a rejected launch must not insert anything", l.Len())
	}
}

func TestLedger_LaunchCommission_NoReceiver(t *testing.T) {
	l := newTestLedger(sale("a", "2025-03-01", "600"))
	q := Quote{Sales: []Transaction{sale("a", "2025-03-01", "600")}, Rate: BRL("10")}
	_, err := l.LaunchCommission(q, date.New(2025, 3, 10))
	if !errors.Is(err, ErrNoReceiver) {
		t.Errorf("LaunchCommission() error = %v, want %v", err, ErrNoReceiver)
	}
	if l.Version() != 0 {
		t.Error("a rejected launch must not mutate the ledger")
	}
}

func TestLedger_DeleteHistoryKeepsFlags(t *testing.T) {
	l := newTestLedger(sale("a", "2025-03-01", "600"))
	q, _ := QuoteCommission(l.Snapshot(), &ana, []string{"a"}, "")
	exp, err := l.LaunchCommission(q, date.New(2025, 3, 10))
	if err != nil {
		t.Fatalf("LaunchCommission() failed: %v", err)
	}

	if !l.Delete(exp.ID) {
		t.Fatal("Delete() of the commission expense not applied")
	}
	if got, _ := l.Get("a"); !got.CommissionPaid {
		t.Error("deleting a commission expense must not reset commissionPaid on its sales")
	}
}

func TestLedger_CommissionBatch(t *testing.T) {
	l := newTestLedger(sale("a", "2025-03-01", "600"), sale("b", "2025-03-02", "400"))
	q, _ := QuoteCommission(l.Snapshot(), &ana, []string{"b", "a"}, "")
	exp, err := l.LaunchCommission(q, date.New(2025, 3, 10))
	if err != nil {
		t.Fatalf("LaunchCommission() failed: %v", err)
	}

	sales, ok := l.CommissionBatch(exp.ID)
	if !ok {
		t.Fatal("CommissionBatch() not found")
	}
	if diff := cmp.Diff([]string{"b", "a"}, ids(sales)); diff != "" {
		t.Errorf("CommissionBatch() mismatch (-want +got):\n%s", diff)
	}
	if _, ok := l.CommissionBatch("a"); ok {
		t.Error("CommissionBatch() of a sale must not be found")
	}
}
