package engine

import (
	"go.uber.org/zap"

	"taxengine/internal/model"
	"taxengine/pkg/money"
)

type VATRequest struct {
	Year         int    `json:"year" validate:"required"`
	Amount       string `json:"amount" validate:"required,money"`
	RateCategory string `json:"rate_category" validate:"required,oneof=standard reduced_12 reduced_7 reduced_5 zero"`
	// AmountIncludesVAT selects the direction: true divides the VAT component
	// out of a gross amount, false adds it onto a net amount.
	AmountIncludesVAT bool `json:"amount_includes_vat"`
}

type VATResponse struct {
	Year         int    `json:"year"`
	RateCategory string `json:"rate_category"`
	Rate         string `json:"rate"`
	NetAmount    string `json:"net_amount"`
	VATAmount    string `json:"vat_amount"`
	GrossAmount  string `json:"gross_amount"`
}

// CalculateVAT converts between VAT-exclusive and VAT-inclusive amounts for a
// rate category. Gross-from-net followed by net-from-gross at the same rate
// reproduces the original net amount.
func (e *engine) CalculateVAT(req VATRequest) (VATResponse, error) {
	year, err := e.rates.Year(req.Year)
	if err != nil {
		return VATResponse{}, err
	}
	category, err := model.ParseVATCategory(req.RateCategory)
	if err != nil {
		return VATResponse{}, err
	}
	rate, err := year.VATRate(category)
	if err != nil {
		return VATResponse{}, err
	}
	amount, err := parseAmount("amount", req.Amount)
	if err != nil {
		return VATResponse{}, err
	}

	net, gross := amount, amount
	if req.AmountIncludesVAT {
		net = amount.Div(one.Add(rate))
	} else {
		gross = amount.Add(amount.Mul(rate))
	}
	vat := gross.Sub(net)

	e.log.Debug("vat calculated",
		zap.Int("year", req.Year),
		zap.String("rate_category", string(category)),
		zap.Bool("amount_includes_vat", req.AmountIncludesVAT))

	return VATResponse{
		Year:         req.Year,
		RateCategory: string(category),
		Rate:         money.FormatRate(rate),
		NetAmount:    money.Format(net),
		VATAmount:    money.Format(vat),
		GrossAmount:  money.Format(gross),
	}, nil
}
