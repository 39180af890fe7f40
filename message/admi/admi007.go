package admi

import (
	"context"
	"encoding/xml"

	json "github.com/goccy/go-json"

	isoval "github.com/open-payments/isoval"
	"github.com/open-payments/isoval/isotype"
)

// ReceiptAcknowledgementV01 (admi.007.001.01) confirms receipt of one or more
// previously sent messages.
type ReceiptAcknowledgementV01 struct {
	MsgId       MessageHeader10                 `xml:"MsgId" json:"MsgId"`
	Rpt         []ReceiptAcknowledgementReport2 `xml:"Rpt" json:"Rpt"`
	SplmtryData []SupplementaryData1            `xml:"SplmtryData" json:"SplmtryData,omitempty"`
}

func (m *ReceiptAcknowledgementV01) RootTag() string { return "RctAck" }

func (m *ReceiptAcknowledgementV01) Validate(ctx context.Context) error {
	var iss isoval.Issues
	iss = append(iss, isoval.Field(ctx, "MsgId", &m.MsgId)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Slice(ctx, "Rpt", m.Rpt)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Slice(ctx, "SplmtryData", m.SplmtryData)...)
	return iss.Err()
}

// MessageHeader10 identifies the acknowledgement itself.
type MessageHeader10 struct {
	MsgId   isotype.Max35Text    `xml:"MsgId" json:"MsgId"`
	CreDtTm *isotype.ISODateTime `xml:"CreDtTm" json:"CreDtTm,omitempty"`
	QryNm   *isotype.Max35Text   `xml:"QryNm" json:"QryNm,omitempty"`
}

func (h *MessageHeader10) Validate(ctx context.Context) error {
	var iss isoval.Issues
	iss = append(iss, isoval.Field(ctx, "MsgId", h.MsgId)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "CreDtTm", h.CreDtTm)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "QryNm", h.QryNm)...)
	return iss.Err()
}

// ReceiptAcknowledgementReport2 pairs the reference of a received message
// with the handling status reported for it.
type ReceiptAcknowledgementReport2 struct {
	RltdRef MessageReference1 `xml:"RltdRef" json:"RltdRef"`
	ReqHdlg RequestHandling2  `xml:"ReqHdlg" json:"ReqHdlg"`
}

func (r *ReceiptAcknowledgementReport2) Validate(ctx context.Context) error {
	var iss isoval.Issues
	iss = append(iss, isoval.Field(ctx, "RltdRef", &r.RltdRef)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "ReqHdlg", &r.ReqHdlg)...)
	return iss.Err()
}

// MessageReference1 references the acknowledged message.
type MessageReference1 struct {
	Ref     isotype.Max35Text       `xml:"Ref" json:"Ref"`
	MsgNm   *isotype.Max35Text      `xml:"MsgNm" json:"MsgNm,omitempty"`
	RefIssr *PartyIdentification136 `xml:"RefIssr" json:"RefIssr,omitempty"`
}

func (m *MessageReference1) Validate(ctx context.Context) error {
	var iss isoval.Issues
	iss = append(iss, isoval.Field(ctx, "Ref", m.Ref)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "MsgNm", m.MsgNm)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "RefIssr", m.RefIssr)...)
	return iss.Err()
}

// RequestHandling2 carries the processing status of the referenced message.
type RequestHandling2 struct {
	StsCd   isotype.Max4AlphaNumericText `xml:"StsCd" json:"StsCd"`
	StsDtTm *isotype.ISODateTime         `xml:"StsDtTm" json:"StsDtTm,omitempty"`
	Desc    *isotype.Max140Text          `xml:"Desc" json:"Desc,omitempty"`
}

func (r *RequestHandling2) Validate(ctx context.Context) error {
	var iss isoval.Issues
	iss = append(iss, isoval.Field(ctx, "StsCd", r.StsCd)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "StsDtTm", r.StsDtTm)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "Desc", r.Desc)...)
	return iss.Err()
}

// PartyIdentification136 identifies the issuer of the acknowledged message.
type PartyIdentification136 struct {
	Id  PartyIdentification120Choice `xml:"Id" json:"Id"`
	LEI *isotype.LEIIdentifier       `xml:"LEI" json:"LEI,omitempty"`
}

func (p *PartyIdentification136) Validate(ctx context.Context) error {
	var iss isoval.Issues
	iss = append(iss, isoval.Field(ctx, "Id", &p.Id)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "LEI", p.LEI)...)
	return iss.Err()
}

// PartyIdentification120Choice selects exactly one identification scheme.
// Arity is checked at decode time; validation only descends into the branch
// that is present.
type PartyIdentification120Choice struct {
	AnyBIC  *isotype.AnyBICDec2014Identifier `xml:"AnyBIC" json:"AnyBIC,omitempty"`
	PrtryId *GenericIdentification36         `xml:"PrtryId" json:"PrtryId,omitempty"`
	NmAndAdr *NameAndAddress5                `xml:"NmAndAdr" json:"NmAndAdr,omitempty"`
}

func (c *PartyIdentification120Choice) arity() error {
	return isoval.ExactlyOne("PartyIdentification120Choice",
		c.AnyBIC != nil, c.PrtryId != nil, c.NmAndAdr != nil)
}

func (c *PartyIdentification120Choice) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	type plain PartyIdentification120Choice
	if err := d.DecodeElement((*plain)(c), &start); err != nil {
		return err
	}
	return c.arity()
}

func (c *PartyIdentification120Choice) UnmarshalJSON(b []byte) error {
	type plain PartyIdentification120Choice
	if err := json.Unmarshal(b, (*plain)(c)); err != nil {
		return err
	}
	return c.arity()
}

func (c *PartyIdentification120Choice) Validate(ctx context.Context) error {
	var iss isoval.Issues
	iss = append(iss, isoval.Field(ctx, "AnyBIC", c.AnyBIC)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "PrtryId", c.PrtryId)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "NmAndAdr", c.NmAndAdr)...)
	return iss.Err()
}

// GenericIdentification36 is a proprietary identification.
type GenericIdentification36 struct {
	Id      isotype.Max35Text  `xml:"Id" json:"Id"`
	Issr    isotype.Max35Text  `xml:"Issr" json:"Issr"`
	SchmeNm *isotype.Max35Text `xml:"SchmeNm" json:"SchmeNm,omitempty"`
}

func (g *GenericIdentification36) Validate(ctx context.Context) error {
	var iss isoval.Issues
	iss = append(iss, isoval.Field(ctx, "Id", g.Id)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "Issr", g.Issr)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "SchmeNm", g.SchmeNm)...)
	return iss.Err()
}

// NameAndAddress5 is a name with an optional postal address.
type NameAndAddress5 struct {
	Nm  isotype.Max350Text `xml:"Nm" json:"Nm"`
	Adr *PostalAddress1    `xml:"Adr" json:"Adr,omitempty"`
}

func (n *NameAndAddress5) Validate(ctx context.Context) error {
	var iss isoval.Issues
	iss = append(iss, isoval.Field(ctx, "Nm", n.Nm)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "Adr", n.Adr)...)
	return iss.Err()
}

// PostalAddress1 is the structured address variant used by admi messages;
// only the country is mandatory.
type PostalAddress1 struct {
	AdrTp       *isotype.AddressType2Code `xml:"AdrTp" json:"AdrTp,omitempty"`
	AdrLine     []isotype.Max70Text       `xml:"AdrLine" json:"AdrLine,omitempty"`
	StrtNm      *isotype.Max70Text        `xml:"StrtNm" json:"StrtNm,omitempty"`
	BldgNb      *isotype.Max16Text        `xml:"BldgNb" json:"BldgNb,omitempty"`
	PstCd       *isotype.Max16Text        `xml:"PstCd" json:"PstCd,omitempty"`
	TwnNm       *isotype.Max35Text        `xml:"TwnNm" json:"TwnNm,omitempty"`
	CtrySubDvsn *isotype.Max35Text        `xml:"CtrySubDvsn" json:"CtrySubDvsn,omitempty"`
	Ctry        isotype.CountryCode       `xml:"Ctry" json:"Ctry"`
}

func (p *PostalAddress1) Validate(ctx context.Context) error {
	var iss isoval.Issues
	iss = append(iss, isoval.Field(ctx, "AdrTp", p.AdrTp)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Slice(ctx, "AdrLine", p.AdrLine)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
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
	return iss.Err()
}

// SupplementaryData1 is the extension point every message carries; its
// envelope is an intentionally unconstrained placeholder.
type SupplementaryData1 struct {
	PlcAndNm *isotype.Max350Text        `xml:"PlcAndNm" json:"PlcAndNm,omitempty"`
	Envlp    SupplementaryDataEnvelope1 `xml:"Envlp" json:"Envlp"`
}

func (s *SupplementaryData1) Validate(ctx context.Context) error {
	var iss isoval.Issues
	iss = append(iss, isoval.Field(ctx, "PlcAndNm", s.PlcAndNm)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "Envlp", &s.Envlp)...)
	return iss.Err()
}

// SupplementaryDataEnvelope1 has no fields; the absence of constraints is the
// contract, so it is always valid.
type SupplementaryDataEnvelope1 struct{}

func (SupplementaryDataEnvelope1) Validate(ctx context.Context) error { return nil }
