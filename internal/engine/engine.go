// Package engine implements the tax calculators: progressive income tax,
// class-1 and class-2 social security contributions, VAT, property stamp
// duty, capital gains, and the comprehensive liability aggregation.
//
// Every calculator is a pure function over the immutable rate table: no I/O,
// no retained state, byte-identical results for identical inputs. Concurrent
// calls need no coordination.
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"taxengine/internal/model"
	"taxengine/internal/rates"
	"taxengine/pkg/money"
)

// Engine exposes one operation per calculator. Requests carry monetary values
// as decimal strings (empty = absent for optional fields) and dates as
// YYYY-MM-DD; responses carry amounts rounded to 2 decimals and rates to 4.
type Engine interface {
	CalculateIncomeTax(req IncomeTaxRequest) (IncomeTaxResponse, error)
	CalculateWageContribution(req WageContributionRequest) (WageContributionResponse, error)
	CalculateSelfEmployedContribution(req SelfEmployedContributionRequest) (SelfEmployedContributionResponse, error)
	CalculateVAT(req VATRequest) (VATResponse, error)
	CalculateStampDuty(req StampDutyRequest) (StampDutyResponse, error)
	CalculateCapitalGains(req CapitalGainsRequest) (CapitalGainsResponse, error)
	CalculateComprehensive(req ComprehensiveRequest) (ComprehensiveResponse, error)
}

var one = decimal.NewFromInt(1)

type engine struct {
	rates        *rates.Table
	log          *zap.Logger
	weeksPerYear int64
}

type Option func(*engine)

// WithLogger attaches a structured logger; the default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithWeeksPerYear overrides the divisor used to derive a weekly wage from
// annual income in the comprehensive calculation. The statutory tables carry
// 52; this is a policy knob, not a law-derived constant.
func WithWeeksPerYear(n int) Option {
	return func(e *engine) {
		if n > 0 {
			e.weeksPerYear = int64(n)
		}
	}
}

// New builds an engine over the given rate table.
func New(table *rates.Table, opts ...Option) Engine {
	e := &engine{
		rates:        table,
		log:          zap.NewNop(),
		weeksPerYear: 52,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log.Info("tax engine ready", zap.Ints("years", table.Years()))
	return e
}

// parseAmount parses a mandatory monetary field, rejecting negatives.
func parseAmount(field, s string) (decimal.Decimal, error) {
	d, err := money.Parse(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s: %v", model.ErrValidation, field, err)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: %s", model.ErrNegativeAmount, field)
	}
	return d, nil
}

// parseOptionalAmount treats the empty string as zero.
func parseOptionalAmount(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return parseAmount(field, s)
}
