package engine

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"taxengine/internal/model"
	"taxengine/pkg/money"
)

type IncomeTaxRequest struct {
	Year         int    `json:"year" validate:"required"`
	FilingStatus string `json:"filing_status" validate:"required,oneof=single married"`
	GrossIncome  string `json:"gross_income" validate:"required,money"`
	Deductions   string `json:"deductions" validate:"omitempty,money"`
	TaxCredits   string `json:"tax_credits" validate:"omitempty,money"`
}

type IncomeTaxResponse struct {
	Year          int           `json:"year"`
	FilingStatus  string        `json:"filing_status"`
	GrossIncome   string        `json:"gross_income"`
	TaxableIncome string        `json:"taxable_income"`
	GrossTax      string        `json:"gross_tax"`
	TaxCredits    string        `json:"tax_credits"`
	NetTax        string        `json:"net_tax"`
	EffectiveRate string        `json:"effective_rate"`
	MarginalRate  string        `json:"marginal_rate"`
	Breakdown     []BracketLine `json:"breakdown"`
}

// CalculateIncomeTax applies the progressive schedule for the filing status
// to gross income less deductions, then subtracts credits. Deductions are
// clamped so taxable income never drops below zero, credits so net tax never
// does.
func (e *engine) CalculateIncomeTax(req IncomeTaxRequest) (IncomeTaxResponse, error) {
	year, err := e.rates.Year(req.Year)
	if err != nil {
		return IncomeTaxResponse{}, err
	}
	status, err := model.ParseFilingStatus(req.FilingStatus)
	if err != nil {
		return IncomeTaxResponse{}, err
	}
	sched, err := year.IncomeSchedule(status)
	if err != nil {
		return IncomeTaxResponse{}, err
	}

	gross, err := parseAmount("gross_income", req.GrossIncome)
	if err != nil {
		return IncomeTaxResponse{}, err
	}
	deductions, err := parseOptionalAmount("deductions", req.Deductions)
	if err != nil {
		return IncomeTaxResponse{}, err
	}
	credits, err := parseOptionalAmount("tax_credits", req.TaxCredits)
	if err != nil {
		return IncomeTaxResponse{}, err
	}

	taxable := gross.Sub(deductions)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}

	grossTax, portions := evaluateSchedule(sched, taxable)

	netTax := grossTax.Sub(credits)
	if netTax.IsNegative() {
		netTax = decimal.Zero
	}

	effective := decimal.Zero
	if gross.IsPositive() {
		effective = netTax.Div(gross)
	}

	e.log.Debug("income tax calculated",
		zap.Int("year", req.Year),
		zap.String("filing_status", string(status)),
		zap.String("net_tax", money.Format(netTax)))

	return IncomeTaxResponse{
		Year:          req.Year,
		FilingStatus:  string(status),
		GrossIncome:   money.Format(gross),
		TaxableIncome: money.Format(taxable),
		GrossTax:      money.Format(grossTax),
		TaxCredits:    money.Format(credits),
		NetTax:        money.Format(netTax),
		EffectiveRate: money.FormatRate(effective),
		MarginalRate:  money.FormatRate(marginalRate(portions)),
		Breakdown:     toBreakdown(portions),
	}, nil
}
