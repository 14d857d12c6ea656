package engine

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"taxengine/internal/model"
	"taxengine/pkg/money"
)

const dateLayout = "2006-01-02"

// daysPerYear converts a holding period in days to years.
var daysPerYear = decimal.RequireFromString("365.25")

type CapitalGainsRequest struct {
	Year             int    `json:"year" validate:"required"`
	PurchasePrice    string `json:"purchase_price" validate:"required,money"`
	SalePrice        string `json:"sale_price" validate:"required,money"`
	PurchaseDate     string `json:"purchase_date" validate:"required,datetime=2006-01-02"`
	SaleDate         string `json:"sale_date" validate:"required,datetime=2006-01-02"`
	ImprovementCosts string `json:"improvement_costs" validate:"omitempty,money"`
	SellingCosts     string `json:"selling_costs" validate:"omitempty,money"`
}

type CapitalGainsResponse struct {
	Year             int    `json:"year"`
	AdjustedCostBase string `json:"adjusted_cost_base"`
	Gain             string `json:"gain"`
	HoldingDays      int64  `json:"holding_days"`
	HoldingYears     string `json:"holding_years"`
	AppliedRate      string `json:"applied_rate"`
	Exempt           bool   `json:"exempt"`
	ExemptionReason  string `json:"exemption_reason,omitempty"`
	TaxDue           string `json:"tax_due"`
}

// CalculateCapitalGains taxes the gain on a disposal: sale price minus the
// adjusted cost base (purchase price + improvement costs + selling costs).
// Holding periods at or beyond the configured threshold are exempt; shorter
// ones pay the short-term rate. Losses are reported as negative gains but
// never produce negative tax.
func (e *engine) CalculateCapitalGains(req CapitalGainsRequest) (CapitalGainsResponse, error) {
	year, err := e.rates.Year(req.Year)
	if err != nil {
		return CapitalGainsResponse{}, err
	}

	purchase, err := parseAmount("purchase_price", req.PurchasePrice)
	if err != nil {
		return CapitalGainsResponse{}, err
	}
	sale, err := parseAmount("sale_price", req.SalePrice)
	if err != nil {
		return CapitalGainsResponse{}, err
	}
	improvements, err := parseOptionalAmount("improvement_costs", req.ImprovementCosts)
	if err != nil {
		return CapitalGainsResponse{}, err
	}
	sellingCosts, err := parseOptionalAmount("selling_costs", req.SellingCosts)
	if err != nil {
		return CapitalGainsResponse{}, err
	}

	purchaseDate, err := parseDate("purchase_date", req.PurchaseDate)
	if err != nil {
		return CapitalGainsResponse{}, err
	}
	saleDate, err := parseDate("sale_date", req.SaleDate)
	if err != nil {
		return CapitalGainsResponse{}, err
	}
	if saleDate.Before(purchaseDate) {
		return CapitalGainsResponse{}, fmt.Errorf("%w: sale date %s precedes purchase date %s",
			model.ErrInvalidDateRange, req.SaleDate, req.PurchaseDate)
	}

	costBase := purchase.Add(improvements).Add(sellingCosts)
	gain := sale.Sub(costBase)

	holdingDays := int64(saleDate.Sub(purchaseDate).Hours() / 24)
	holdingYears := decimal.NewFromInt(holdingDays).Div(daysPerYear)

	p := year.CapitalGains()
	rate := p.ShortTermRate
	exempt := holdingYears.GreaterThanOrEqual(decimal.NewFromInt(int64(p.ExemptionYears)))
	reason := ""
	if exempt {
		rate = decimal.Zero
		reason = fmt.Sprintf("holding period of %s years meets the %d-year exemption threshold",
			holdingYears.StringFixed(2), p.ExemptionYears)
	}

	tax := decimal.Zero
	if gain.IsPositive() {
		tax = gain.Mul(rate)
	}

	e.log.Debug("capital gains calculated",
		zap.Int("year", req.Year),
		zap.Int64("holding_days", holdingDays),
		zap.Bool("exempt", exempt))

	return CapitalGainsResponse{
		Year:             req.Year,
		AdjustedCostBase: money.Format(costBase),
		Gain:             money.Format(gain),
		HoldingDays:      holdingDays,
		HoldingYears:     holdingYears.StringFixed(2),
		AppliedRate:      money.FormatRate(rate),
		Exempt:           exempt,
		ExemptionReason:  reason,
		TaxDue:           money.Format(tax),
	}, nil
}

func parseDate(field, s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: expected YYYY-MM-DD, got %q", model.ErrValidation, field, s)
	}
	return t, nil
}
