package isotype

import (
	"context"
	"encoding/xml"
	"strings"

	"github.com/shopspring/decimal"

	isoval "github.com/open-payments/isoval"
	"github.com/open-payments/isoval/constraint"
)

// ActiveCurrencyAndAmount is an amount with its currency carried as an XML
// attribute: <IntrBkSttlmAmt Ccy="USD">1840.25</IntrBkSttlmAmt>. The value is
// an exact decimal; amounts must be non-negative.
type ActiveCurrencyAndAmount struct {
	Ccy   ActiveCurrencyCode `json:"Ccy"`
	Value decimal.Decimal    `json:"Amt"`
}

func (a *ActiveCurrencyAndAmount) Validate(ctx context.Context) error {
	var iss isoval.Issues
	iss = append(iss, isoval.Field(ctx, "Ccy", a.Ccy)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Rebase(constraint.NonNegative(a.Value).Err(), "Amt")...)
	return iss.Err()
}

// rawAmount is the wire shape; chardata must be a string for encoding/xml.
type rawAmount struct {
	Ccy   string `xml:"Ccy,attr"`
	Value string `xml:",chardata"`
}

func (a *ActiveCurrencyAndAmount) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var raw rawAmount
	if err := d.DecodeElement(&raw, &start); err != nil {
		return err
	}
	v, err := decimal.NewFromString(strings.TrimSpace(raw.Value))
	if err != nil {
		return isoval.Issues{{
			Code:    isoval.CodeInvalidType,
			Message: "amount is not a decimal number",
			Cause:   err,
			Params:  map[string]any{"got": raw.Value},
		}}
	}
	a.Ccy = ActiveCurrencyCode(raw.Ccy)
	a.Value = v
	return nil
}

func (a ActiveCurrencyAndAmount) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	raw := rawAmount{Ccy: string(a.Ccy), Value: a.Value.String()}
	return e.EncodeElement(raw, start)
}
