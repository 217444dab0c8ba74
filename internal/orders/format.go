package orders

import "github.com/shopspring/decimal"

// FormatAmount renders a monetary value with two decimals. Display only; stored
// amounts are never rounded.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatDiscount renders a discount amount negated, e.g. 45 -> "-45.00".
func FormatDiscount(d decimal.Decimal) string {
	if d.IsNegative() {
		return d.Neg().StringFixed(2)
	}
	return "-" + d.StringFixed(2)
}
