package constraint

import (
	"github.com/shopspring/decimal"

	isoval "github.com/open-payments/isoval"
	"github.com/open-payments/isoval/i18n"
)

// Numeric checks use exact decimal arithmetic so financial amounts are never
// misclassified at a boundary by floating-point rounding.

// NonNegative checks d >= 0.
func NonNegative(d decimal.Decimal) isoval.Issues {
	if !d.IsNegative() {
		return nil
	}
	return outOfRange(d, "0", "")
}

// Positive checks d > 0.
func Positive(d decimal.Decimal) isoval.Issues {
	if d.IsPositive() {
		return nil
	}
	return outOfRange(d, "0 (exclusive)", "")
}

// Range checks min <= d <= max. Either bound may be nil for a one-sided
// range.
func Range(d decimal.Decimal, min, max *decimal.Decimal) isoval.Issues {
	if min != nil && d.LessThan(*min) {
		return outOfRange(d, min.String(), "")
	}
	if max != nil && d.GreaterThan(*max) {
		return outOfRange(d, "", max.String())
	}
	return nil
}

func outOfRange(d decimal.Decimal, min, max string) isoval.Issues {
	params := map[string]any{"got": d.String()}
	if min != "" {
		params["min"] = min
	}
	if max != "" {
		params["max"] = max
	}
	return isoval.Issues{{
		Code:    isoval.CodeOutOfRange,
		Message: i18n.T(isoval.CodeOutOfRange, nil),
		Params:  params,
	}}
}
