package constraint

import (
	isoval "github.com/open-payments/isoval"
	"github.com/open-payments/isoval/i18n"
)

// OneOf checks enumeration membership: the value must equal one of the
// allowed literals, case-sensitively.
func OneOf(v string, allowed ...string) isoval.Issues {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return isoval.Issues{{
		Code:    isoval.CodeInvalidEnum,
		Message: i18n.T(isoval.CodeInvalidEnum, nil),
		Params:  map[string]any{"allowed": allowed, "got": v},
	}}
}
