package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxengine/internal/model"
)

func TestCalculateWageContribution(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name               string
		req                WageContributionRequest
		wantContributory   string
		wantClampedTo      string
		wantEmployeeWeekly string
		wantEmployeeAnnual string
		wantWeeks          int
	}{
		{
			name:               "wage between floor and ceiling",
			req:                WageContributionRequest{Year: 2025, WeeklyWage: "500"},
			wantContributory:   "500.00",
			wantClampedTo:      "",
			wantEmployeeWeekly: "50.00",
			wantEmployeeAnnual: "2600.00",
			wantWeeks:          52,
		},
		{
			name:               "wage below floor is billed at the floor",
			req:                WageContributionRequest{Year: 2025, WeeklyWage: "150"},
			wantContributory:   "221.78",
			wantClampedTo:      "floor",
			wantEmployeeWeekly: "22.18",
			wantEmployeeAnnual: "1153.26",
			wantWeeks:          52,
		},
		{
			name:               "wage above ceiling is billed at the ceiling",
			req:                WageContributionRequest{Year: 2025, WeeklyWage: "800"},
			wantContributory:   "559.30",
			wantClampedTo:      "ceiling",
			wantEmployeeWeekly: "55.93",
			wantEmployeeAnnual: "2908.36",
			wantWeeks:          52,
		},
		{
			name:               "partial year of weeks",
			req:                WageContributionRequest{Year: 2025, WeeklyWage: "500", WeeksWorked: 40},
			wantContributory:   "500.00",
			wantClampedTo:      "",
			wantEmployeeWeekly: "50.00",
			wantEmployeeAnnual: "2000.00",
			wantWeeks:          40,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := e.CalculateWageContribution(tt.req)
			require.NoError(t, err)

			assert.Equal(t, tt.wantContributory, resp.ContributoryWage)
			assert.Equal(t, tt.wantClampedTo, resp.ClampedTo)
			assert.Equal(t, tt.wantEmployeeWeekly, resp.EmployeeWeekly)
			assert.Equal(t, tt.wantEmployeeAnnual, resp.EmployeeAnnual)
			assert.Equal(t, tt.wantWeeks, resp.WeeksWorked)

			// Employer rate matches the employee rate in every configured year.
			assert.Equal(t, resp.EmployeeWeekly, resp.EmployerWeekly)
			assert.Equal(t, resp.EmployeeAnnual, resp.EmployerAnnual)
		})
	}
}

func TestCalculateSelfEmployedContribution(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name             string
		req              SelfEmployedContributionRequest
		wantContributory string
		wantClampedTo    string
		wantContribution string
	}{
		{
			name:             "income at the floor",
			req:              SelfEmployedContributionRequest{Year: 2025, AnnualIncome: "3600"},
			wantContributory: "3600.00",
			wantClampedTo:    "",
			wantContribution: "540.00",
		},
		{
			name:             "income below the floor is billed at the floor",
			req:              SelfEmployedContributionRequest{Year: 2025, AnnualIncome: "1200"},
			wantContributory: "3600.00",
			wantClampedTo:    "floor",
			wantContribution: "540.00",
		},
		{
			name:             "income above the ceiling is billed at the ceiling",
			req:              SelfEmployedContributionRequest{Year: 2025, AnnualIncome: "100000"},
			wantContributory: "28303.00",
			wantClampedTo:    "ceiling",
			wantContribution: "4245.45",
		},
		{
			name:             "income between floor and ceiling",
			req:              SelfEmployedContributionRequest{Year: 2025, AnnualIncome: "20000"},
			wantContributory: "20000.00",
			wantClampedTo:    "",
			wantContribution: "3000.00",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := e.CalculateSelfEmployedContribution(tt.req)
			require.NoError(t, err)

			assert.Equal(t, tt.wantContributory, resp.ContributoryIncome)
			assert.Equal(t, tt.wantClampedTo, resp.ClampedTo)
			assert.Equal(t, tt.wantContribution, resp.Contribution)
		})
	}
}

func TestSocialSecurityErrors(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.CalculateWageContribution(WageContributionRequest{Year: 1999, WeeklyWage: "500"})
	require.ErrorIs(t, err, model.ErrUnknownTaxYear)

	_, err = e.CalculateWageContribution(WageContributionRequest{Year: 2025, WeeklyWage: "-500"})
	require.ErrorIs(t, err, model.ErrNegativeAmount)

	_, err = e.CalculateSelfEmployedContribution(SelfEmployedContributionRequest{Year: 2025, AnnualIncome: "-1"})
	require.ErrorIs(t, err, model.ErrNegativeAmount)
}
