package isotype

import (
	"context"

	"github.com/open-payments/isoval/constraint"
)

// Closed code sets. Membership is exact and case-sensitive.

type AddressType2Code string

func (v AddressType2Code) Validate(ctx context.Context) error {
	return constraint.OneOf(string(v), "ADDR", "PBOX", "HOME", "BIZZ", "MLTO", "DLVY").Err()
}

type ChargeBearerType1Code string

func (v ChargeBearerType1Code) Validate(ctx context.Context) error {
	return constraint.OneOf(string(v), "DEBT", "CRED", "SHAR", "SLEV").Err()
}

type SettlementMethod1Code string

func (v SettlementMethod1Code) Validate(ctx context.Context) error {
	return constraint.OneOf(string(v), "INDA", "INGA", "COVE", "CLRG").Err()
}
