package engine

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"taxengine/internal/model"
	"taxengine/pkg/money"
)

type StampDutyRequest struct {
	Year          int    `json:"year" validate:"required"`
	BuyerCategory string `json:"buyer_category" validate:"required,oneof=first_time regular"`
	PropertyValue string `json:"property_value" validate:"required,money"`
}

type StampDutyResponse struct {
	Year          int           `json:"year"`
	BuyerCategory string        `json:"buyer_category"`
	PropertyValue string        `json:"property_value"`
	TotalDuty     string        `json:"total_duty"`
	EffectiveRate string        `json:"effective_rate"`
	MarginalRate  string        `json:"marginal_rate"`
	Breakdown     []BracketLine `json:"breakdown"`
}

// CalculateStampDuty applies the buyer category's progressive schedule to the
// property value. Same bracket semantics as income tax; no deductions or
// credits apply to duty.
func (e *engine) CalculateStampDuty(req StampDutyRequest) (StampDutyResponse, error) {
	year, err := e.rates.Year(req.Year)
	if err != nil {
		return StampDutyResponse{}, err
	}
	category, err := model.ParseBuyerCategory(req.BuyerCategory)
	if err != nil {
		return StampDutyResponse{}, err
	}
	sched, err := year.StampSchedule(category)
	if err != nil {
		return StampDutyResponse{}, err
	}
	value, err := parseAmount("property_value", req.PropertyValue)
	if err != nil {
		return StampDutyResponse{}, err
	}

	duty, portions := evaluateSchedule(sched, value)

	effective := decimal.Zero
	if value.IsPositive() {
		effective = duty.Div(value)
	}

	e.log.Debug("stamp duty calculated",
		zap.Int("year", req.Year),
		zap.String("buyer_category", string(category)),
		zap.String("total_duty", money.Format(duty)))

	return StampDutyResponse{
		Year:          req.Year,
		BuyerCategory: string(category),
		PropertyValue: money.Format(value),
		TotalDuty:     money.Format(duty),
		EffectiveRate: money.FormatRate(effective),
		MarginalRate:  money.FormatRate(marginalRate(portions)),
		Breakdown:     toBreakdown(portions),
	}, nil
}
