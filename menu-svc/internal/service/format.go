package service

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders amount as $#,##0.00, e.g. -$1,234.50.
func FormatCurrency(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if amount.Round(2).IsNegative() {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

func FormatRating(avg float64) string {
	return strconv.FormatFloat(avg, 'f', 2, 64)
}
