package isotype

import (
	"context"

	"github.com/open-payments/isoval/constraint"
)

// ISODate is a calendar date, YYYY-MM-DD.
type ISODate string

func (v ISODate) Validate(ctx context.Context) error {
	return constraint.Date(string(v)).Err()
}

// ISODateTime is a timestamp with optional zone offset and fractional
// seconds.
type ISODateTime string

func (v ISODateTime) Validate(ctx context.Context) error {
	return constraint.DateTime(string(v)).Err()
}
