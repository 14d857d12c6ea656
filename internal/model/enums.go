package model

import "fmt"

// FilingStatus selects which income tax schedule applies.
type FilingStatus string

const (
	FilingSingle  FilingStatus = "single"
	FilingMarried FilingStatus = "married"
)

func ParseFilingStatus(s string) (FilingStatus, error) {
	switch st := FilingStatus(s); st {
	case FilingSingle, FilingMarried:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFilingStatus, s)
	}
}

// BuyerCategory selects which stamp duty schedule applies.
type BuyerCategory string

const (
	BuyerFirstTime BuyerCategory = "first_time"
	BuyerRegular   BuyerCategory = "regular"
)

func ParseBuyerCategory(s string) (BuyerCategory, error) {
	switch c := BuyerCategory(s); c {
	case BuyerFirstTime, BuyerRegular:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidBuyerCategory, s)
	}
}

// VATCategory names a VAT rate tier. The set of tiers actually configured is
// per tax year; an unconfigured tier fails the rate lookup, not the parse.
type VATCategory string

const (
	VATStandard  VATCategory = "standard"
	VATReduced12 VATCategory = "reduced_12"
	VATReduced7  VATCategory = "reduced_7"
	VATReduced5  VATCategory = "reduced_5"
	VATZero      VATCategory = "zero"
)

func ParseVATCategory(s string) (VATCategory, error) {
	switch c := VATCategory(s); c {
	case VATStandard, VATReduced12, VATReduced7, VATReduced5, VATZero:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRateCategory, s)
	}
}

// EmploymentMode selects the social security contribution class in the
// comprehensive calculation.
type EmploymentMode string

const (
	ModeEmployee     EmploymentMode = "employee"
	ModeSelfEmployed EmploymentMode = "self_employed"
)

func ParseEmploymentMode(s string) (EmploymentMode, error) {
	switch m := EmploymentMode(s); m {
	case ModeEmployee, ModeSelfEmployed:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidEmploymentMode, s)
	}
}
