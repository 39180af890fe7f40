package constraint

import (
	"regexp"
	"unicode/utf8"

	isoval "github.com/open-payments/isoval"
	"github.com/open-payments/isoval/i18n"
)

// Text checks rune-counted length bounds and, when re is non-nil, a full-match
// pattern. Bounds are inclusive; max < 0 means unbounded. Checks run in
// schema order (min, max, pattern) and the first violation wins for this one
// value.
func Text(v string, min, max int, re *regexp.Regexp) isoval.Issues {
	n := utf8.RuneCountInString(v)
	if n < min {
		return isoval.Issues{{
			Code:    isoval.CodeTooShort,
			Message: i18n.T(isoval.CodeTooShort, nil),
			Params:  map[string]any{"min": min, "got": n},
		}}
	}
	if max >= 0 && n > max {
		return isoval.Issues{{
			Code:    isoval.CodeTooLong,
			Message: i18n.T(isoval.CodeTooLong, nil),
			Params:  map[string]any{"max": max, "got": n},
		}}
	}
	if re != nil && !re.MatchString(v) {
		return pattern(v, re)
	}
	return nil
}

// Match checks a pattern-only primitive (no explicit length facet in the
// source schema; the pattern itself bounds the value).
func Match(v string, re *regexp.Regexp) isoval.Issues {
	if re.MatchString(v) {
		return nil
	}
	return pattern(v, re)
}

func pattern(v string, re *regexp.Regexp) isoval.Issues {
	return isoval.Issues{{
		Code:    isoval.CodePattern,
		Message: i18n.T(isoval.CodePattern, nil),
		Params:  map[string]any{"pattern": re.String(), "got": v},
	}}
}

// MustPattern compiles a schema-inherited pattern anchored to the whole
// value. XSD patterns always match the full lexical form, so partial matches
// are failures.
func MustPattern(expr string) *regexp.Regexp {
	return regexp.MustCompile(`\A(?:` + expr + `)\z`)
}
