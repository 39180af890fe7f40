package pacs

import (
	"context"
	"encoding/xml"

	json "github.com/goccy/go-json"

	isoval "github.com/open-payments/isoval"
	"github.com/open-payments/isoval/isotype"
)

// PartyIdentification135 identifies a debtor or creditor.
type PartyIdentification135 struct {
	Nm       *isotype.Max140Text  `xml:"Nm" json:"Nm,omitempty"`
	PstlAdr  *PostalAddress24     `xml:"PstlAdr" json:"PstlAdr,omitempty"`
	Id       *Party38Choice       `xml:"Id" json:"Id,omitempty"`
	CtryOfRes *isotype.CountryCode `xml:"CtryOfRes" json:"CtryOfRes,omitempty"`
}

func (p *PartyIdentification135) Validate(ctx context.Context) error {
	var iss isoval.Issues
	iss = append(iss, isoval.Field(ctx, "Nm", p.Nm)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "PstlAdr", p.PstlAdr)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "Id", p.Id)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "CtryOfRes", p.CtryOfRes)...)
	return iss.Err()
}

// PostalAddress24 is the newer structured address; every component is
// optional.
type PostalAddress24 struct {
	StrtNm      *isotype.Max70Text   `xml:"StrtNm" json:"StrtNm,omitempty"`
	BldgNb      *isotype.Max16Text   `xml:"BldgNb" json:"BldgNb,omitempty"`
	PstCd       *isotype.Max16Text   `xml:"PstCd" json:"PstCd,omitempty"`
	TwnNm       *isotype.Max35Text   `xml:"TwnNm" json:"TwnNm,omitempty"`
	CtrySubDvsn *isotype.Max35Text   `xml:"CtrySubDvsn" json:"CtrySubDvsn,omitempty"`
	Ctry        *isotype.CountryCode `xml:"Ctry" json:"Ctry,omitempty"`
	AdrLine     []isotype.Max70Text  `xml:"AdrLine" json:"AdrLine,omitempty"`
}

func (p *PostalAddress24) Validate(ctx context.Context) error {
	var iss isoval.Issues
	iss = append(iss, isoval.Field(ctx, "StrtNm", p.StrtNm)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "BldgNb", p.BldgNb)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "PstCd", p.PstCd)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "TwnNm", p.TwnNm)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "CtrySubDvsn", p.CtrySubDvsn)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "Ctry", p.Ctry)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Slice(ctx, "AdrLine", p.AdrLine)...)
	return iss.Err()
}

// Party38Choice selects between organisation and private person
// identification. Exactly one branch must be present.
type Party38Choice struct {
	OrgId  *OrganisationIdentification29 `xml:"OrgId" json:"OrgId,omitempty"`
	PrvtId *PersonIdentification13       `xml:"PrvtId" json:"PrvtId,omitempty"`
}

func (c *Party38Choice) arity() error {
	return isoval.ExactlyOne("Party38Choice", c.OrgId != nil, c.PrvtId != nil)
}

func (c *Party38Choice) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	type plain Party38Choice
	if err := d.DecodeElement((*plain)(c), &start); err != nil {
		return err
	}
	return c.arity()
}

func (c *Party38Choice) UnmarshalJSON(b []byte) error {
	type plain Party38Choice
	if err := json.Unmarshal(b, (*plain)(c)); err != nil {
		return err
	}
	return c.arity()
}

func (c *Party38Choice) Validate(ctx context.Context) error {
	var iss isoval.Issues
	iss = append(iss, isoval.Field(ctx, "OrgId", c.OrgId)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "PrvtId", c.PrvtId)...)
	return iss.Err()
}

// OrganisationIdentification29 identifies an organisation.
type OrganisationIdentification29 struct {
	AnyBIC *isotype.AnyBICDec2014Identifier      `xml:"AnyBIC" json:"AnyBIC,omitempty"`
	LEI    *isotype.LEIIdentifier                `xml:"LEI" json:"LEI,omitempty"`
	Othr   []GenericOrganisationIdentification1  `xml:"Othr" json:"Othr,omitempty"`
}

func (o *OrganisationIdentification29) Validate(ctx context.Context) error {
	var iss isoval.Issues
	iss = append(iss, isoval.Field(ctx, "AnyBIC", o.AnyBIC)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "LEI", o.LEI)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Slice(ctx, "Othr", o.Othr)...)
	return iss.Err()
}

// PersonIdentification13 identifies a private person.
type PersonIdentification13 struct {
	Othr []GenericPersonIdentification1 `xml:"Othr" json:"Othr,omitempty"`
}

func (p *PersonIdentification13) Validate(ctx context.Context) error {
	return isoval.Slice(ctx, "Othr", p.Othr).Err()
}

// GenericOrganisationIdentification1 is a scheme-qualified organisation id.
type GenericOrganisationIdentification1 struct {
	Id   isotype.Max35Text  `xml:"Id" json:"Id"`
	Issr *isotype.Max35Text `xml:"Issr" json:"Issr,omitempty"`
}

func (g *GenericOrganisationIdentification1) Validate(ctx context.Context) error {
	var iss isoval.Issues
	iss = append(iss, isoval.Field(ctx, "Id", g.Id)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "Issr", g.Issr)...)
	return iss.Err()
}

// GenericPersonIdentification1 is a scheme-qualified person id.
type GenericPersonIdentification1 struct {
	Id   isotype.Max35Text  `xml:"Id" json:"Id"`
	Issr *isotype.Max35Text `xml:"Issr" json:"Issr,omitempty"`
}

func (g *GenericPersonIdentification1) Validate(ctx context.Context) error {
	var iss isoval.Issues
	iss = append(iss, isoval.Field(ctx, "Id", g.Id)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "Issr", g.Issr)...)
	return iss.Err()
}
