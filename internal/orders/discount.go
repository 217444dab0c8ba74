package orders

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ParseDiscount turns discount input text into a percentage. Blank input means no
// discount; anything else must be a decimal number. The range is not checked here.
func ParseDiscount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidDiscount, raw)
	}
	return d, nil
}

// ValidateDiscount fails with ErrDiscountOutOfRange unless 0 <= percent <= 100.
func ValidateDiscount(percent decimal.Decimal) error {
	if percent.IsNegative() || percent.GreaterThan(hundred) {
		return fmt.Errorf("%w: got %s", ErrDiscountOutOfRange, percent.String())
	}
	return nil
}
