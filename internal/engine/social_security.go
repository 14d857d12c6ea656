package engine

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"taxengine/pkg/money"
)

// Clamp directions reported in contribution results.
const (
	ClampedToFloor   = "floor"
	ClampedToCeiling = "ceiling"
)

type WageContributionRequest struct {
	Year       int    `json:"year" validate:"required"`
	WeeklyWage string `json:"weekly_wage" validate:"required,money"`
	// WeeksWorked defaults to the year's configured weeks when zero.
	WeeksWorked int `json:"weeks_worked" validate:"omitempty,gt=0,lte=53"`
}

type WageContributionResponse struct {
	Year             int    `json:"year"`
	WeeklyWage       string `json:"weekly_wage"`
	ContributoryWage string `json:"contributory_wage"`
	ClampedTo        string `json:"clamped_to,omitempty"`
	WeeksWorked      int    `json:"weeks_worked"`
	EmployeeRate     string `json:"employee_rate"`
	EmployerRate     string `json:"employer_rate"`
	EmployeeWeekly   string `json:"employee_weekly"`
	EmployerWeekly   string `json:"employer_weekly"`
	EmployeeAnnual   string `json:"employee_annual"`
	EmployerAnnual   string `json:"employer_annual"`
	TotalAnnual      string `json:"total_annual"`
}

// CalculateWageContribution computes class-1 contributions: the weekly wage
// is clamped to the configured floor/ceiling, both rates are applied weekly,
// and the weekly amounts are annualized over the weeks worked. Clamping is
// silent but reported so callers can explain the difference from wage × rate.
func (e *engine) CalculateWageContribution(req WageContributionRequest) (WageContributionResponse, error) {
	year, err := e.rates.Year(req.Year)
	if err != nil {
		return WageContributionResponse{}, err
	}
	wage, err := parseAmount("weekly_wage", req.WeeklyWage)
	if err != nil {
		return WageContributionResponse{}, err
	}

	p := year.ClassOne()
	weeks := req.WeeksWorked
	if weeks == 0 {
		weeks = p.WeeksPerYear
	}

	contributory := money.Clamp(wage, p.WeeklyFloor, p.WeeklyCeiling)
	clampedTo := ""
	switch {
	case wage.LessThan(p.WeeklyFloor):
		clampedTo = ClampedToFloor
	case wage.GreaterThan(p.WeeklyCeiling):
		clampedTo = ClampedToCeiling
	}

	weeksDec := decimal.NewFromInt(int64(weeks))
	employeeWeekly := contributory.Mul(p.EmployeeRate)
	employerWeekly := contributory.Mul(p.EmployerRate)
	employeeAnnual := employeeWeekly.Mul(weeksDec)
	employerAnnual := employerWeekly.Mul(weeksDec)

	e.log.Debug("wage contribution calculated",
		zap.Int("year", req.Year),
		zap.Int("weeks_worked", weeks),
		zap.String("clamped_to", clampedTo))

	return WageContributionResponse{
		Year:             req.Year,
		WeeklyWage:       money.Format(wage),
		ContributoryWage: money.Format(contributory),
		ClampedTo:        clampedTo,
		WeeksWorked:      weeks,
		EmployeeRate:     money.FormatRate(p.EmployeeRate),
		EmployerRate:     money.FormatRate(p.EmployerRate),
		EmployeeWeekly:   money.Format(employeeWeekly),
		EmployerWeekly:   money.Format(employerWeekly),
		EmployeeAnnual:   money.Format(employeeAnnual),
		EmployerAnnual:   money.Format(employerAnnual),
		TotalAnnual:      money.Format(employeeAnnual.Add(employerAnnual)),
	}, nil
}

type SelfEmployedContributionRequest struct {
	Year         int    `json:"year" validate:"required"`
	AnnualIncome string `json:"annual_income" validate:"required,money"`
}

type SelfEmployedContributionResponse struct {
	Year               int    `json:"year"`
	AnnualIncome       string `json:"annual_income"`
	ContributoryIncome string `json:"contributory_income"`
	ClampedTo          string `json:"clamped_to,omitempty"`
	Rate               string `json:"rate"`
	Contribution       string `json:"contribution"`
}

// CalculateSelfEmployedContribution computes the class-2 contribution: annual
// income clamped to the configured floor/ceiling, single rate.
func (e *engine) CalculateSelfEmployedContribution(req SelfEmployedContributionRequest) (SelfEmployedContributionResponse, error) {
	year, err := e.rates.Year(req.Year)
	if err != nil {
		return SelfEmployedContributionResponse{}, err
	}
	income, err := parseAmount("annual_income", req.AnnualIncome)
	if err != nil {
		return SelfEmployedContributionResponse{}, err
	}

	p := year.ClassTwo()
	contributory := money.Clamp(income, p.AnnualFloor, p.AnnualCeiling)
	clampedTo := ""
	switch {
	case income.LessThan(p.AnnualFloor):
		clampedTo = ClampedToFloor
	case income.GreaterThan(p.AnnualCeiling):
		clampedTo = ClampedToCeiling
	}

	contribution := contributory.Mul(p.Rate)

	e.log.Debug("self-employed contribution calculated",
		zap.Int("year", req.Year),
		zap.String("clamped_to", clampedTo))

	return SelfEmployedContributionResponse{
		Year:               req.Year,
		AnnualIncome:       money.Format(income),
		ContributoryIncome: money.Format(contributory),
		ClampedTo:          clampedTo,
		Rate:               money.FormatRate(p.Rate),
		Contribution:       money.Format(contribution),
	}, nil
}
