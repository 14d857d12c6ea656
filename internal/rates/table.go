// Package rates holds the year-indexed rate tables the calculators read from.
// A Table is immutable after Load and safe to share across goroutines.
package rates

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"taxengine/internal/model"
)

// ClassOneParams are the wage-earner contribution parameters: matching
// employee/employer rates applied to the weekly wage after clamping.
type ClassOneParams struct {
	EmployeeRate  decimal.Decimal
	EmployerRate  decimal.Decimal
	WeeklyFloor   decimal.Decimal
	WeeklyCeiling decimal.Decimal
	WeeksPerYear  int
}

// ClassTwoParams are the self-employed contribution parameters: a single rate
// applied to annual income after clamping.
type ClassTwoParams struct {
	Rate          decimal.Decimal
	AnnualFloor   decimal.Decimal
	AnnualCeiling decimal.Decimal
}

// CapitalGainsParams hold the short-term rate and the holding-period threshold
// (in years) at which a gain becomes exempt.
type CapitalGainsParams struct {
	ShortTermRate  decimal.Decimal
	ExemptionYears int
}

// YearConfig is the complete rate data for one tax year.
type YearConfig struct {
	year         int
	incomeTax    map[model.FilingStatus]model.Schedule
	stampDuty    map[model.BuyerCategory]model.Schedule
	vat          map[model.VATCategory]decimal.Decimal
	classOne     ClassOneParams
	classTwo     ClassTwoParams
	capitalGains CapitalGainsParams
}

// IncomeSchedule returns the income tax schedule for the filing status.
func (y *YearConfig) IncomeSchedule(status model.FilingStatus) (model.Schedule, error) {
	s, ok := y.incomeTax[status]
	if !ok {
		return nil, fmt.Errorf("%w: no income tax schedule for %q in %d", model.ErrInvalidFilingStatus, status, y.year)
	}
	return s, nil
}

// StampSchedule returns the stamp duty schedule for the buyer category.
func (y *YearConfig) StampSchedule(category model.BuyerCategory) (model.Schedule, error) {
	s, ok := y.stampDuty[category]
	if !ok {
		return nil, fmt.Errorf("%w: no stamp duty schedule for %q in %d", model.ErrInvalidBuyerCategory, category, y.year)
	}
	return s, nil
}

// VATRate returns the rate fraction for the category.
func (y *YearConfig) VATRate(category model.VATCategory) (decimal.Decimal, error) {
	r, ok := y.vat[category]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: no VAT rate for %q in %d", model.ErrUnknownRateCategory, category, y.year)
	}
	return r, nil
}

func (y *YearConfig) ClassOne() ClassOneParams         { return y.classOne }
func (y *YearConfig) ClassTwo() ClassTwoParams         { return y.classTwo }
func (y *YearConfig) CapitalGains() CapitalGainsParams { return y.capitalGains }

// Table maps tax years to their rate configuration.
type Table struct {
	years map[int]*YearConfig
}

// Year resolves the configuration for a tax year.
func (t *Table) Year(year int) (*YearConfig, error) {
	y, ok := t.years[year]
	if !ok {
		return nil, fmt.Errorf("%w: %d", model.ErrUnknownTaxYear, year)
	}
	return y, nil
}

// Years lists the configured tax years in ascending order.
func (t *Table) Years() []int {
	ys := make([]int, 0, len(t.years))
	for y := range t.years {
		ys = append(ys, y)
	}
	sort.Ints(ys)
	return ys
}
