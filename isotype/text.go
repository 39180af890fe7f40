package isotype

import (
	"context"

	"github.com/open-payments/isoval/constraint"
)

// Bounded text types. Lengths count Unicode scalar values, bounds inclusive.

type Max16Text string

func (v Max16Text) Validate(ctx context.Context) error {
	return constraint.Text(string(v), 1, 16, nil).Err()
}

type Max34Text string

func (v Max34Text) Validate(ctx context.Context) error {
	return constraint.Text(string(v), 1, 34, nil).Err()
}

type Max35Text string

func (v Max35Text) Validate(ctx context.Context) error {
	return constraint.Text(string(v), 1, 35, nil).Err()
}

type Max70Text string

func (v Max70Text) Validate(ctx context.Context) error {
	return constraint.Text(string(v), 1, 70, nil).Err()
}

type Max140Text string

func (v Max140Text) Validate(ctx context.Context) error {
	return constraint.Text(string(v), 1, 140, nil).Err()
}

type Max350Text string

func (v Max350Text) Validate(ctx context.Context) error {
	return constraint.Text(string(v), 1, 350, nil).Err()
}

type Max1000Text string

func (v Max1000Text) Validate(ctx context.Context) error {
	return constraint.Text(string(v), 1, 1000, nil).Err()
}

var (
	reMax4AlphaNumeric   = constraint.MustPattern(`[a-zA-Z0-9]{1,4}`)
	reExact4AlphaNumeric = constraint.MustPattern(`[a-zA-Z0-9]{4}`)
)

// Max4AlphaNumericText carries both a length facet and a pattern facet in the
// source schema.
type Max4AlphaNumericText string

func (v Max4AlphaNumericText) Validate(ctx context.Context) error {
	return constraint.Text(string(v), 1, 4, reMax4AlphaNumeric).Err()
}

type Exact4AlphaNumericText string

func (v Exact4AlphaNumericText) Validate(ctx context.Context) error {
	return constraint.Match(string(v), reExact4AlphaNumeric).Err()
}

// ExternalClearingSystemIdentification1Code values come from the external
// code sets; only the length is checked here.
type ExternalClearingSystemIdentification1Code string

func (v ExternalClearingSystemIdentification1Code) Validate(ctx context.Context) error {
	return constraint.Text(string(v), 1, 5, nil).Err()
}
