package engine

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"taxengine/internal/model"
	"taxengine/pkg/money"
)

type ComprehensiveRequest struct {
	Year           int    `json:"year" validate:"required"`
	FilingStatus   string `json:"filing_status" validate:"required,oneof=single married"`
	GrossIncome    string `json:"gross_income" validate:"required,money"`
	Deductions     string `json:"deductions" validate:"omitempty,money"`
	TaxCredits     string `json:"tax_credits" validate:"omitempty,money"`
	EmploymentMode string `json:"employment_mode" validate:"required,oneof=employee self_employed"`
	// WeeklyWage applies in employee mode; when absent it is derived as
	// gross income divided by the engine's weeks-per-year setting.
	WeeklyWage  string `json:"weekly_wage" validate:"omitempty,money"`
	WeeksWorked int    `json:"weeks_worked" validate:"omitempty,gt=0,lte=53"`
}

type ComprehensiveResponse struct {
	Year                     int                               `json:"year"`
	EmploymentMode           string                            `json:"employment_mode"`
	IncomeTax                IncomeTaxResponse                 `json:"income_tax"`
	WageContribution         *WageContributionResponse         `json:"wage_contribution,omitempty"`
	SelfEmployedContribution *SelfEmployedContributionResponse `json:"self_employed_contribution,omitempty"`
	SocialSecurityDue        string                            `json:"social_security_due"`
	TotalTaxLiability        string                            `json:"total_tax_liability"`
	NetIncome                string                            `json:"net_income"`
	OverallEffectiveRate     string                            `json:"overall_effective_rate"`
}

// CalculateComprehensive composes income tax with the social security class
// matching the employment mode and reports the combined liability. Both
// sub-results are embedded unmodified so the composition can be audited.
// The liability counts the taxpayer's own contribution: for wage earners the
// employee share, never the employer match.
func (e *engine) CalculateComprehensive(req ComprehensiveRequest) (ComprehensiveResponse, error) {
	mode, err := model.ParseEmploymentMode(req.EmploymentMode)
	if err != nil {
		return ComprehensiveResponse{}, err
	}

	incomeTax, err := e.CalculateIncomeTax(IncomeTaxRequest{
		Year:         req.Year,
		FilingStatus: req.FilingStatus,
		GrossIncome:  req.GrossIncome,
		Deductions:   req.Deductions,
		TaxCredits:   req.TaxCredits,
	})
	if err != nil {
		return ComprehensiveResponse{}, err
	}

	resp := ComprehensiveResponse{
		Year:           req.Year,
		EmploymentMode: string(mode),
		IncomeTax:      incomeTax,
	}

	// Sub-results are already rounded to the cent; the aggregate sums the
	// reported figures so it always matches what the caller sees.
	gross := decimal.RequireFromString(incomeTax.GrossIncome)
	netTax := decimal.RequireFromString(incomeTax.NetTax)

	var socialSecurity decimal.Decimal
	switch mode {
	case model.ModeEmployee:
		weekly := req.WeeklyWage
		if weekly == "" {
			weekly = gross.Div(decimal.NewFromInt(e.weeksPerYear)).String()
		}
		contribution, err := e.CalculateWageContribution(WageContributionRequest{
			Year:        req.Year,
			WeeklyWage:  weekly,
			WeeksWorked: req.WeeksWorked,
		})
		if err != nil {
			return ComprehensiveResponse{}, err
		}
		resp.WageContribution = &contribution
		socialSecurity = decimal.RequireFromString(contribution.EmployeeAnnual)
	case model.ModeSelfEmployed:
		contribution, err := e.CalculateSelfEmployedContribution(SelfEmployedContributionRequest{
			Year:         req.Year,
			AnnualIncome: req.GrossIncome,
		})
		if err != nil {
			return ComprehensiveResponse{}, err
		}
		resp.SelfEmployedContribution = &contribution
		socialSecurity = decimal.RequireFromString(contribution.Contribution)
	}

	total := netTax.Add(socialSecurity)
	overall := decimal.Zero
	if gross.IsPositive() {
		overall = total.Div(gross)
	}

	e.log.Debug("comprehensive liability calculated",
		zap.Int("year", req.Year),
		zap.String("employment_mode", string(mode)),
		zap.String("total_tax_liability", money.Format(total)))

	resp.SocialSecurityDue = money.Format(socialSecurity)
	resp.TotalTaxLiability = money.Format(total)
	resp.NetIncome = money.Format(gross.Sub(total))
	resp.OverallEffectiveRate = money.FormatRate(overall)
	return resp, nil
}
