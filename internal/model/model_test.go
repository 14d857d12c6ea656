package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelectors(t *testing.T) {
	status, err := ParseFilingStatus("single")
	require.NoError(t, err)
	assert.Equal(t, FilingSingle, status)

	_, err = ParseFilingStatus("widowed")
	require.ErrorIs(t, err, ErrInvalidFilingStatus)

	category, err := ParseBuyerCategory("first_time")
	require.NoError(t, err)
	assert.Equal(t, BuyerFirstTime, category)

	_, err = ParseBuyerCategory("investor")
	require.ErrorIs(t, err, ErrInvalidBuyerCategory)

	vat, err := ParseVATCategory("reduced_7")
	require.NoError(t, err)
	assert.Equal(t, VATReduced7, vat)

	_, err = ParseVATCategory("luxury")
	require.ErrorIs(t, err, ErrUnknownRateCategory)

	mode, err := ParseEmploymentMode("self_employed")
	require.NoError(t, err)
	assert.Equal(t, ModeSelfEmployed, mode)

	_, err = ParseEmploymentMode("contractor")
	require.ErrorIs(t, err, ErrInvalidEmploymentMode)
}

func bracket(lower, upper, rate string) Bracket {
	b := Bracket{
		Lower: decimal.RequireFromString(lower),
		Rate:  decimal.RequireFromString(rate),
		Open:  upper == "",
	}
	if !b.Open {
		b.Upper = decimal.RequireFromString(upper)
	}
	return b
}

func TestScheduleValidate(t *testing.T) {
	tests := []struct {
		name    string
		sched   Schedule
		wantErr bool
	}{
		{
			name:  "flat single open bracket",
			sched: Schedule{bracket("0", "", "0.05")},
		},
		{
			name: "contiguous progressive schedule",
			sched: Schedule{
				bracket("0", "9100", "0"),
				bracket("9100", "14500", "0.15"),
				bracket("14500", "", "0.25"),
			},
		},
		{
			name:    "empty schedule",
			sched:   Schedule{},
			wantErr: true,
		},
		{
			name: "does not start at zero",
			sched: Schedule{
				bracket("100", "9100", "0"),
				bracket("9100", "", "0.15"),
			},
			wantErr: true,
		},
		{
			name: "gap between brackets",
			sched: Schedule{
				bracket("0", "9100", "0"),
				bracket("10000", "", "0.15"),
			},
			wantErr: true,
		},
		{
			name: "no open tail",
			sched: Schedule{
				bracket("0", "9100", "0"),
				bracket("9100", "14500", "0.15"),
			},
			wantErr: true,
		},
		{
			name: "open bracket in the middle",
			sched: Schedule{
				bracket("0", "", "0"),
				bracket("9100", "", "0.15"),
			},
			wantErr: true,
		},
		{
			name: "rate above one",
			sched: Schedule{
				bracket("0", "9100", "1.5"),
				bracket("9100", "", "0.15"),
			},
			wantErr: true,
		},
		{
			name: "inverted bounds",
			sched: Schedule{
				bracket("0", "0", "0.1"),
				bracket("0", "", "0.15"),
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sched.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
