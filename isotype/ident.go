package isotype

import (
	"context"

	"github.com/open-payments/isoval/constraint"
)

// Identifier patterns are carried over verbatim from the source schemas.
var (
	reCountry    = constraint.MustPattern(`[A-Z]{2,2}`)
	reCurrency   = constraint.MustPattern(`[A-Z]{3,3}`)
	reAnyBIC     = constraint.MustPattern(`[A-Z0-9]{4,4}[A-Z]{2,2}[A-Z0-9]{2,2}([A-Z0-9]{3,3}){0,1}`)
	reIBAN       = constraint.MustPattern(`[A-Z]{2,2}[0-9]{2,2}[a-zA-Z0-9]{1,30}`)
	reLEI        = constraint.MustPattern(`[A-Z0-9]{18,18}[0-9]{2,2}`)
	reMax15Num   = constraint.MustPattern(`[0-9]{1,15}`)
	reUUIDv4     = constraint.MustPattern(`[a-f0-9]{8}-[a-f0-9]{4}-4[a-f0-9]{3}-[89ab][a-f0-9]{4}-[a-f0-9]{12}`)
)

// CountryCode is a 2-letter ISO 3166 country code, upper case only.
type CountryCode string

func (v CountryCode) Validate(ctx context.Context) error {
	return constraint.Match(string(v), reCountry).Err()
}

// ActiveCurrencyCode is a 3-letter ISO 4217 currency code.
type ActiveCurrencyCode string

func (v ActiveCurrencyCode) Validate(ctx context.Context) error {
	return constraint.Match(string(v), reCurrency).Err()
}

// AnyBICDec2014Identifier is a BIC per ISO 9362, 8 or 11 characters.
type AnyBICDec2014Identifier string

func (v AnyBICDec2014Identifier) Validate(ctx context.Context) error {
	return constraint.Match(string(v), reAnyBIC).Err()
}

// BICFIDec2014Identifier identifies a financial institution; same lexical
// space as AnyBIC.
type BICFIDec2014Identifier string

func (v BICFIDec2014Identifier) Validate(ctx context.Context) error {
	return constraint.Match(string(v), reAnyBIC).Err()
}

type IBAN2007Identifier string

func (v IBAN2007Identifier) Validate(ctx context.Context) error {
	return constraint.Match(string(v), reIBAN).Err()
}

type LEIIdentifier string

func (v LEIIdentifier) Validate(ctx context.Context) error {
	return constraint.Match(string(v), reLEI).Err()
}

// Max15NumericText holds digit-only counters such as NbOfTxs.
type Max15NumericText string

func (v Max15NumericText) Validate(ctx context.Context) error {
	return constraint.Match(string(v), reMax15Num).Err()
}

// UUIDv4Identifier is the UETR lexical form.
type UUIDv4Identifier string

func (v UUIDv4Identifier) Validate(ctx context.Context) error {
	return constraint.Match(string(v), reUUIDv4).Err()
}
