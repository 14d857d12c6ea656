package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Bracket is one band of a progressive schedule. When Open is true the bracket
// has no upper bound and Upper is ignored.
type Bracket struct {
	Lower decimal.Decimal
	Upper decimal.Decimal
	Open  bool
	Rate  decimal.Decimal
}

// Schedule is an ordered set of brackets covering [0, ∞).
type Schedule []Bracket

var one = decimal.NewFromInt(1)

// Validate checks the schedule invariants: ascending and contiguous from 0,
// exactly one open-ended final bracket, every rate within [0, 1].
func (s Schedule) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("schedule has no brackets")
	}
	if !s[0].Lower.IsZero() {
		return fmt.Errorf("first bracket must start at 0, got %s", s[0].Lower)
	}
	for i, b := range s {
		if b.Rate.IsNegative() || b.Rate.GreaterThan(one) {
			return fmt.Errorf("bracket %d: rate %s outside [0, 1]", i, b.Rate)
		}
		last := i == len(s)-1
		if last {
			if !b.Open {
				return fmt.Errorf("final bracket must be open-ended")
			}
			continue
		}
		if b.Open {
			return fmt.Errorf("bracket %d: only the final bracket may be open-ended", i)
		}
		if b.Upper.LessThanOrEqual(b.Lower) {
			return fmt.Errorf("bracket %d: upper bound %s not above lower bound %s", i, b.Upper, b.Lower)
		}
		if !s[i+1].Lower.Equal(b.Upper) {
			return fmt.Errorf("bracket %d: next bracket starts at %s, expected %s", i, s[i+1].Lower, b.Upper)
		}
	}
	return nil
}
