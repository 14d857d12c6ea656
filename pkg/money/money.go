// Package money holds the shared decimal helpers for the engine: parsing of
// decimal-string request fields, clamping, and the single output rounding rule
// (half-up to 2 decimal places for amounts, 4 for rates). Intermediate
// arithmetic is never rounded; only these formatters are.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Parse converts a decimal string such as "45000" or "221.78".
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("not a decimal amount: %q", s)
	}
	return d, nil
}

// ParseOptional treats the empty string as zero.
func ParseOptional(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return Parse(s)
}

// Format renders a monetary amount rounded half-up to 2 decimal places.
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatRate renders a rate rounded half-up to 4 decimal places.
func FormatRate(d decimal.Decimal) string {
	return d.StringFixed(4)
}

// Clamp bounds d to [floor, ceiling].
func Clamp(d, floor, ceiling decimal.Decimal) decimal.Decimal {
	if d.LessThan(floor) {
		return floor
	}
	if d.GreaterThan(ceiling) {
		return ceiling
	}
	return d
}
