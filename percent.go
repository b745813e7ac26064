package finanflow

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseRate parses a percentage as typed by a user, "10", "12.5" or "12,5".
// A trailing "%" is accepted.
func ParseRate(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty rate")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid rate %q: %w", s, err)
	}
	return d, nil
}

// FormatRate formats a percentage, e.g. "12.5%".
func FormatRate(rate decimal.Decimal) string {
	return rate.String() + "%"
}
