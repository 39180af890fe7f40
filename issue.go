package isoval

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// Constraint violations reported by validation.
	CodeTooShort    = "too_short"
	CodeTooLong     = "too_long"
	CodePattern     = "pattern"
	CodeInvalidEnum = "invalid_enum"
	CodeOutOfRange  = "out_of_range"
	CodeRequired    = "required"

	// Format violations (ISO date/time lexical checks).
	CodeInvalidFormat = "invalid_format"

	// Structural issues surfaced at decode time, never by validation.
	CodeInvalidType     = "invalid_type"
	CodeParseError      = "parse_error"
	CodeChoiceNone      = "choice_none"
	CodeChoiceAmbiguous = "choice_ambiguous"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string `json:"path"`    // Dotted field path (for example: Rpt[0].ReqHdlg.StsCd).
	Code    string `json:"code"`    // One of the codes listed above.
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"` // Optional: remediation hints, type names, etc.
	Cause   error  `json:"-"`              // Optional: underlying error.
	// Params carries structured parameters (e.g., {"min":1, "max":35, "got":40})
	// for i18n and observability.
	Params map[string]any `json:"params,omitempty"`
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. too_short at Rpt[0].ReqHdlg.StsCd
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Err returns the collection as an error, or nil when it is empty. Validate
// implementations should return Err rather than a bare (possibly empty) slice
// so that callers can compare against nil.
func (iss Issues) Err() error {
	if len(iss) == 0 {
		return nil
	}
	return iss
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
