package constraint

import (
	"time"

	isoval "github.com/open-payments/isoval"
	"github.com/open-payments/isoval/i18n"
)

const isoDateLayout = "2006-01-02"

// datetime layouts accepted by the ISODateTime lexical space: an optional
// zone offset or Z; fractional seconds are handled by time.Parse itself.
var isoDateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// Date checks the ISODate lexical form (YYYY-MM-DD, a real calendar date).
func Date(v string) isoval.Issues {
	if _, err := time.Parse(isoDateLayout, v); err != nil {
		return invalidFormat(v, "ISODate", err)
	}
	return nil
}

// DateTime checks the ISODateTime lexical form.
func DateTime(v string) isoval.Issues {
	for _, layout := range isoDateTimeLayouts {
		if _, err := time.Parse(layout, v); err == nil {
			return nil
		}
	}
	return invalidFormat(v, "ISODateTime", nil)
}

func invalidFormat(v, format string, cause error) isoval.Issues {
	return isoval.Issues{{
		Code:    isoval.CodeInvalidFormat,
		Message: i18n.T(isoval.CodeInvalidFormat, nil),
		Hint:    format,
		Cause:   cause,
		Params:  map[string]any{"format": format, "got": v},
	}}
}
