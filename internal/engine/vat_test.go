package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxengine/internal/model"
)

func TestCalculateVATStandard(t *testing.T) {
	e := newTestEngine(t)

	exclusive, err := e.CalculateVAT(VATRequest{
		Year:         2025,
		Amount:       "100",
		RateCategory: "standard",
	})
	require.NoError(t, err)
	assert.Equal(t, "100.00", exclusive.NetAmount)
	assert.Equal(t, "18.00", exclusive.VATAmount)
	assert.Equal(t, "118.00", exclusive.GrossAmount)

	inclusive, err := e.CalculateVAT(VATRequest{
		Year:              2025,
		Amount:            exclusive.GrossAmount,
		RateCategory:      "standard",
		AmountIncludesVAT: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "100.00", inclusive.NetAmount)
	assert.Equal(t, "18.00", inclusive.VATAmount)
	assert.Equal(t, "118.00", inclusive.GrossAmount)
}

// Gross-from-net then net-from-gross must reproduce the net amount for every
// configured rate category.
func TestVATRoundTrip(t *testing.T) {
	e := newTestEngine(t)

	categories := []string{"standard", "reduced_12", "reduced_7", "reduced_5", "zero"}
	amounts := []string{"0", "0.01", "99.99", "100", "1234.56", "1000000"}

	for _, category := range categories {
		for _, amount := range amounts {
			t.Run(category+"/"+amount, func(t *testing.T) {
				out, err := e.CalculateVAT(VATRequest{Year: 2025, Amount: amount, RateCategory: category})
				require.NoError(t, err)

				back, err := e.CalculateVAT(VATRequest{
					Year:              2025,
					Amount:            out.GrossAmount,
					RateCategory:      category,
					AmountIncludesVAT: true,
				})
				require.NoError(t, err)
				assert.Equal(t, out.NetAmount, back.NetAmount)
			})
		}
	}
}

func TestCalculateVATErrors(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.CalculateVAT(VATRequest{Year: 2025, Amount: "100", RateCategory: "luxury"})
	require.ErrorIs(t, err, model.ErrUnknownRateCategory)

	_, err = e.CalculateVAT(VATRequest{Year: 2025, Amount: "-100", RateCategory: "standard"})
	require.ErrorIs(t, err, model.ErrNegativeAmount)

	_, err = e.CalculateVAT(VATRequest{Year: 1999, Amount: "100", RateCategory: "standard"})
	require.ErrorIs(t, err, model.ErrUnknownTaxYear)
}
