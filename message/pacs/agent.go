package pacs

import (
	"context"
	"encoding/xml"

	json "github.com/goccy/go-json"

	isoval "github.com/open-payments/isoval"
	"github.com/open-payments/isoval/isotype"
)

// BranchAndFinancialInstitutionIdentification6 identifies an agent. The
// branch level is not used by this subset.
type BranchAndFinancialInstitutionIdentification6 struct {
	FinInstnId FinancialInstitutionIdentification18 `xml:"FinInstnId" json:"FinInstnId"`
}

func (b *BranchAndFinancialInstitutionIdentification6) Validate(ctx context.Context) error {
	return isoval.Field(ctx, "FinInstnId", &b.FinInstnId).Err()
}

// FinancialInstitutionIdentification18 identifies a financial institution by
// BIC, clearing system membership, LEI or name.
type FinancialInstitutionIdentification18 struct {
	BICFI      *isotype.BICFIDec2014Identifier      `xml:"BICFI" json:"BICFI,omitempty"`
	ClrSysMmbId *ClearingSystemMemberIdentification2 `xml:"ClrSysMmbId" json:"ClrSysMmbId,omitempty"`
	LEI        *isotype.LEIIdentifier               `xml:"LEI" json:"LEI,omitempty"`
	Nm         *isotype.Max140Text                  `xml:"Nm" json:"Nm,omitempty"`
}

func (f *FinancialInstitutionIdentification18) Validate(ctx context.Context) error {
	var iss isoval.Issues
	iss = append(iss, isoval.Field(ctx, "BICFI", f.BICFI)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "ClrSysMmbId", f.ClrSysMmbId)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "LEI", f.LEI)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "Nm", f.Nm)...)
	return iss.Err()
}

// ClearingSystemMemberIdentification2 is a membership id within a clearing
// system, e.g. an ABA routing number under USABA.
type ClearingSystemMemberIdentification2 struct {
	ClrSysId *ClearingSystemIdentification2Choice `xml:"ClrSysId" json:"ClrSysId,omitempty"`
	MmbId    isotype.Max35Text                    `xml:"MmbId" json:"MmbId"`
}

func (c *ClearingSystemMemberIdentification2) Validate(ctx context.Context) error {
	var iss isoval.Issues
	iss = append(iss, isoval.Field(ctx, "ClrSysId", c.ClrSysId)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "MmbId", c.MmbId)...)
	return iss.Err()
}

// ClearingSystemIdentification2Choice names the clearing system either by
// external code or proprietary text. Exactly one branch must be present.
type ClearingSystemIdentification2Choice struct {
	Cd    *isotype.ExternalClearingSystemIdentification1Code `xml:"Cd" json:"Cd,omitempty"`
	Prtry *isotype.Max35Text                                 `xml:"Prtry" json:"Prtry,omitempty"`
}

func (c *ClearingSystemIdentification2Choice) arity() error {
	return isoval.ExactlyOne("ClearingSystemIdentification2Choice",
		c.Cd != nil, c.Prtry != nil)
}

func (c *ClearingSystemIdentification2Choice) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	type plain ClearingSystemIdentification2Choice
	if err := d.DecodeElement((*plain)(c), &start); err != nil {
		return err
	}
	return c.arity()
}

func (c *ClearingSystemIdentification2Choice) UnmarshalJSON(b []byte) error {
	type plain ClearingSystemIdentification2Choice
	if err := json.Unmarshal(b, (*plain)(c)); err != nil {
		return err
	}
	return c.arity()
}

func (c *ClearingSystemIdentification2Choice) Validate(ctx context.Context) error {
	var iss isoval.Issues
	iss = append(iss, isoval.Field(ctx, "Cd", c.Cd)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "Prtry", c.Prtry)...)
	return iss.Err()
}

// CashAccount38 is an account held at an agent.
type CashAccount38 struct {
	Id  AccountIdentification4Choice `xml:"Id" json:"Id"`
	Ccy *isotype.ActiveCurrencyCode  `xml:"Ccy" json:"Ccy,omitempty"`
	Nm  *isotype.Max70Text           `xml:"Nm" json:"Nm,omitempty"`
}

func (a *CashAccount38) Validate(ctx context.Context) error {
	var iss isoval.Issues
	iss = append(iss, isoval.Field(ctx, "Id", &a.Id)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "Ccy", a.Ccy)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "Nm", a.Nm)...)
	return iss.Err()
}

// AccountIdentification4Choice identifies an account by IBAN or by another
// scheme. Exactly one branch must be present.
type AccountIdentification4Choice struct {
	IBAN *isotype.IBAN2007Identifier     `xml:"IBAN" json:"IBAN,omitempty"`
	Othr *GenericAccountIdentification1 `xml:"Othr" json:"Othr,omitempty"`
}

func (c *AccountIdentification4Choice) arity() error {
	return isoval.ExactlyOne("AccountIdentification4Choice",
		c.IBAN != nil, c.Othr != nil)
}

func (c *AccountIdentification4Choice) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	type plain AccountIdentification4Choice
	if err := d.DecodeElement((*plain)(c), &start); err != nil {
		return err
	}
	return c.arity()
}

func (c *AccountIdentification4Choice) UnmarshalJSON(b []byte) error {
	type plain AccountIdentification4Choice
	if err := json.Unmarshal(b, (*plain)(c)); err != nil {
		return err
	}
	return c.arity()
}

func (c *AccountIdentification4Choice) Validate(ctx context.Context) error {
	var iss isoval.Issues
	iss = append(iss, isoval.Field(ctx, "IBAN", c.IBAN)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "Othr", c.Othr)...)
	return iss.Err()
}

// GenericAccountIdentification1 is a non-IBAN account identification.
type GenericAccountIdentification1 struct {
	Id   isotype.Max34Text  `xml:"Id" json:"Id"`
	Issr *isotype.Max35Text `xml:"Issr" json:"Issr,omitempty"`
}

func (g *GenericAccountIdentification1) Validate(ctx context.Context) error {
	var iss isoval.Issues
	iss = append(iss, isoval.Field(ctx, "Id", g.Id)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "Issr", g.Issr)...)
	return iss.Err()
}
