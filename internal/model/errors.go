package model

import "errors"

// Calculation error taxonomy. Every engine failure wraps exactly one of these,
// so callers can branch with errors.Is regardless of the message detail.
var (
	ErrUnknownTaxYear        = errors.New("unknown tax year")
	ErrInvalidFilingStatus   = errors.New("invalid filing status")
	ErrInvalidBuyerCategory  = errors.New("invalid buyer category")
	ErrUnknownRateCategory   = errors.New("unknown VAT rate category")
	ErrInvalidEmploymentMode = errors.New("invalid employment mode")
	ErrNegativeAmount        = errors.New("negative monetary amount")
	ErrInvalidDateRange      = errors.New("invalid date range")
	ErrValidation            = errors.New("validation failed")
)
