package cmd

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/finanflow"
	"github.com/etnz/finanflow/date"
	"github.com/shopspring/decimal"
)

// txFlags are the fields of a transaction form. Unset flags keep the value
// of the transaction they are applied to.
type txFlags struct {
	typ            string
	date           string
	due            string
	desc           string
	amount         string
	category       string
	subcategory    string
	status         string
	commissionPaid string
}

func (t *txFlags) register(f *flag.FlagSet) {
	f.StringVar(&t.typ, "type", "", "Transaction type: income or expense")
	f.StringVar(&t.date, "d", "", "Booking date. See the user manual for supported date formats.")
	f.StringVar(&t.due, "due", "", "Due date. Defaults to the booking date.")
	f.StringVar(&t.desc, "desc", "", "Description")
	f.StringVar(&t.amount, "a", "", "Amount, e.g. 1500 or 1.500,50")
	f.StringVar(&t.category, "c", "", "Category")
	f.StringVar(&t.subcategory, "s", "", "Subcategory. Defaults to the first subcategory of the category.")
	f.StringVar(&t.status, "status", "", "Payment status: paid or pending")
	f.StringVar(&t.commissionPaid, "commission-paid", "", "Whether a commission was already paid on this sale: true or false")
}

// apply sets the flags that were given on tx.
func (t *txFlags) apply(tx *finanflow.Transaction, today date.Date) error {
	var err error
	if t.typ != "" {
		if tx.Type, err = finanflow.ParseType(t.typ); err != nil {
			return err
		}
	}
	if t.date != "" {
		if tx.Date, err = date.ParseFrom(t.date, today); err != nil {
			return err
		}
	}
	if t.due != "" {
		if tx.DueDate, err = date.ParseFrom(t.due, today); err != nil {
			return err
		}
	}
	if t.desc != "" {
		tx.Description = t.desc
	}
	if t.amount != "" {
		if tx.Amount, err = parseAmount(t.amount); err != nil {
			return err
		}
	}
	if t.category != "" && t.category != tx.Category {
		tx.Category = t.category
		if t.subcategory == "" {
			tx.Subcategory = finanflow.DefaultTaxonomy.DefaultSubcategory(tx.Category)
		}
	}
	if t.subcategory != "" {
		tx.Subcategory = t.subcategory
	}
	if t.status != "" {
		if tx.Status, err = finanflow.ParseStatus(t.status); err != nil {
			return err
		}
	}
	if t.commissionPaid != "" {
		if tx.CommissionPaid, err = strconv.ParseBool(t.commissionPaid); err != nil {
			return fmt.Errorf("invalid -commission-paid %q: %w", t.commissionPaid, err)
		}
	}
	return nil
}

// parseAmount parses an amount typed by a user, with either a dot or a comma
// as the decimal separator. A currency symbol is ignored.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	if strings.Contains(s, ",") {
		// 1.500,50
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return d, nil
}
