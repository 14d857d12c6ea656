package engine

import (
	"github.com/shopspring/decimal"

	"taxengine/internal/model"
	"taxengine/pkg/money"
)

// BracketLine is one entry of a progressive breakdown: a bracket actually
// touched by the base amount, with the portion taxed in it. UpperBound is
// empty for the open-ended final bracket.
type BracketLine struct {
	LowerBound    string `json:"lower_bound"`
	UpperBound    string `json:"upper_bound,omitempty"`
	Rate          string `json:"rate"`
	TaxableAmount string `json:"taxable_amount"`
	TaxAmount     string `json:"tax_amount"`
}

type bracketPortion struct {
	bracket model.Bracket
	taxable decimal.Decimal
	tax     decimal.Decimal
}

// evaluateSchedule runs the progressive bracket algorithm shared by income
// tax and stamp duty. A negative base is treated as zero. Iteration stops at
// the first bracket whose lower bound the base does not exceed, so the
// returned portions cover exactly the brackets entered.
func evaluateSchedule(sched model.Schedule, base decimal.Decimal) (decimal.Decimal, []bracketPortion) {
	if base.IsNegative() {
		base = decimal.Zero
	}

	total := decimal.Zero
	var portions []bracketPortion
	for _, b := range sched {
		if base.LessThanOrEqual(b.Lower) {
			break
		}
		top := base
		if !b.Open && top.GreaterThan(b.Upper) {
			top = b.Upper
		}
		taxable := top.Sub(b.Lower)
		tax := taxable.Mul(b.Rate)
		total = total.Add(tax)
		portions = append(portions, bracketPortion{bracket: b, taxable: taxable, tax: tax})
	}
	return total, portions
}

// marginalRate is the rate of the highest bracket actually entered, zero when
// none was.
func marginalRate(portions []bracketPortion) decimal.Decimal {
	if len(portions) == 0 {
		return decimal.Zero
	}
	return portions[len(portions)-1].bracket.Rate
}

func toBreakdown(portions []bracketPortion) []BracketLine {
	lines := make([]BracketLine, 0, len(portions))
	for _, p := range portions {
		line := BracketLine{
			LowerBound:    money.Format(p.bracket.Lower),
			Rate:          money.FormatRate(p.bracket.Rate),
			TaxableAmount: money.Format(p.taxable),
			TaxAmount:     money.Format(p.tax),
		}
		if !p.bracket.Open {
			line.UpperBound = money.Format(p.bracket.Upper)
		}
		lines = append(lines, line)
	}
	return lines
}
