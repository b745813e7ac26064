package finanflow

import (
	"encoding/json"
	"testing"

	"github.com/etnz/finanflow/date"
	"github.com/shopspring/decimal"
)

func TestTransaction_JSON(t *testing.T) {
	d := date.New(2025, 3, 10)
	tx := Transaction{
		ID:          "s1",
		Description: "Venda",
		Amount:      decimal.RequireFromString("1000.50"),
		Type:        Income,
		Category:    CategoryRevenue,
		Subcategory: "Venda de Cursos",
		Date:        d,
		DueDate:     d,
		Status:      Paid,
	}
	base := `{"id":"s1","description":"Venda","amount":1000.5,"type":"INCOME","category":"Receitas","subcategory":"Venda de Cursos","date":"2025-03-10","dueDate":"2025-03-10","status":"PAID"`

	tests := []struct {
		name string
		edit func(*Transaction)
		want string
	}{
		{"sale", func(*Transaction) {}, base + `}`},
		{"commissioned sale", func(tx *Transaction) { tx.CommissionPaid = true }, base + `,"commissionPaid":true}`},
		{"commission expense", func(tx *Transaction) {
			tx.ReceiverID = "r1"
			tx.SourceSales = []string{"a", "b"}
		}, base + `,"receiverId":"r1","sourceSales":["a","b"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := tx
			tt.edit(&tx)
			got, err := json.Marshal(tx)
			if err != nil {
				t.Fatalf("Marshal() failed: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal() =\n%s\nwant\n%s", got, tt.want)
			}

			var back Transaction
			if err := json.Unmarshal(got, &back); err != nil {
				t.Fatalf("Unmarshal() failed: %v", err)
			}
			if !back.Equal(tx) {
				t.Errorf("Unmarshal() = %+v, want %+v", back, tx)
			}
		})
	}
}
