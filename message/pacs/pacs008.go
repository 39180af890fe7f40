package pacs

import (
	"context"

	"github.com/shopspring/decimal"

	isoval "github.com/open-payments/isoval"
	"github.com/open-payments/isoval/constraint"
	"github.com/open-payments/isoval/isotype"
)

// FIToFICustomerCreditTransferV08 (pacs.008.001.08) moves funds between
// financial institutions on behalf of customers.
type FIToFICustomerCreditTransferV08 struct {
	GrpHdr      GroupHeader93                  `xml:"GrpHdr" json:"GrpHdr"`
	CdtTrfTxInf []CreditTransferTransaction39  `xml:"CdtTrfTxInf" json:"CdtTrfTxInf"`
	SplmtryData []SupplementaryData1           `xml:"SplmtryData" json:"SplmtryData,omitempty"`
}

func (m *FIToFICustomerCreditTransferV08) RootTag() string { return "FIToFICstmrCdtTrf" }

func (m *FIToFICustomerCreditTransferV08) Validate(ctx context.Context) error {
	var iss isoval.Issues
	iss = append(iss, isoval.Field(ctx, "GrpHdr", &m.GrpHdr)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Slice(ctx, "CdtTrfTxInf", m.CdtTrfTxInf)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Slice(ctx, "SplmtryData", m.SplmtryData)...)
	return iss.Err()
}

// GroupHeader93 carries message-level identification and settlement details.
type GroupHeader93 struct {
	MsgId             isotype.Max35Text                                 `xml:"MsgId" json:"MsgId"`
	CreDtTm           isotype.ISODateTime                               `xml:"CreDtTm" json:"CreDtTm"`
	BtchBookg         *bool                                             `xml:"BtchBookg" json:"BtchBookg,omitempty"`
	NbOfTxs           isotype.Max15NumericText                          `xml:"NbOfTxs" json:"NbOfTxs"`
	CtrlSum           *decimal.Decimal                                  `xml:"CtrlSum" json:"CtrlSum,omitempty"`
	TtlIntrBkSttlmAmt *isotype.ActiveCurrencyAndAmount                  `xml:"TtlIntrBkSttlmAmt" json:"TtlIntrBkSttlmAmt,omitempty"`
	IntrBkSttlmDt     *isotype.ISODate                                  `xml:"IntrBkSttlmDt" json:"IntrBkSttlmDt,omitempty"`
	SttlmInf          SettlementInstruction7                            `xml:"SttlmInf" json:"SttlmInf"`
	InstgAgt          *BranchAndFinancialInstitutionIdentification6     `xml:"InstgAgt" json:"InstgAgt,omitempty"`
	InstdAgt          *BranchAndFinancialInstitutionIdentification6     `xml:"InstdAgt" json:"InstdAgt,omitempty"`
}

func (h *GroupHeader93) Validate(ctx context.Context) error {
	var iss isoval.Issues
	iss = append(iss, isoval.Field(ctx, "MsgId", h.MsgId)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "CreDtTm", h.CreDtTm)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "NbOfTxs", h.NbOfTxs)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	if h.CtrlSum != nil {
		iss = append(iss, isoval.Rebase(constraint.NonNegative(*h.CtrlSum).Err(), "CtrlSum")...)
		if isoval.Done(ctx, iss) {
			return iss
		}
	}
	iss = append(iss, isoval.Field(ctx, "TtlIntrBkSttlmAmt", h.TtlIntrBkSttlmAmt)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "IntrBkSttlmDt", h.IntrBkSttlmDt)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "SttlmInf", &h.SttlmInf)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "InstgAgt", h.InstgAgt)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "InstdAgt", h.InstdAgt)...)
	return iss.Err()
}

// SettlementInstruction7 states how the interbank settlement is executed.
type SettlementInstruction7 struct {
	SttlmMtd  isotype.SettlementMethod1Code `xml:"SttlmMtd" json:"SttlmMtd"`
	SttlmAcct *CashAccount38                `xml:"SttlmAcct" json:"SttlmAcct,omitempty"`
}

func (s *SettlementInstruction7) Validate(ctx context.Context) error {
	var iss isoval.Issues
	iss = append(iss, isoval.Field(ctx, "SttlmMtd", s.SttlmMtd)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "SttlmAcct", s.SttlmAcct)...)
	return iss.Err()
}

// CreditTransferTransaction39 is one credit transfer within the message.
type CreditTransferTransaction39 struct {
	PmtId         PaymentIdentification7                        `xml:"PmtId" json:"PmtId"`
	IntrBkSttlmAmt isotype.ActiveCurrencyAndAmount              `xml:"IntrBkSttlmAmt" json:"IntrBkSttlmAmt"`
	IntrBkSttlmDt *isotype.ISODate                              `xml:"IntrBkSttlmDt" json:"IntrBkSttlmDt,omitempty"`
	AccptncDtTm   *isotype.ISODateTime                          `xml:"AccptncDtTm" json:"AccptncDtTm,omitempty"`
	ChrgBr        isotype.ChargeBearerType1Code                 `xml:"ChrgBr" json:"ChrgBr"`
	Dbtr          PartyIdentification135                        `xml:"Dbtr" json:"Dbtr"`
	DbtrAcct      *CashAccount38                                `xml:"DbtrAcct" json:"DbtrAcct,omitempty"`
	DbtrAgt       BranchAndFinancialInstitutionIdentification6  `xml:"DbtrAgt" json:"DbtrAgt"`
	CdtrAgt       BranchAndFinancialInstitutionIdentification6  `xml:"CdtrAgt" json:"CdtrAgt"`
	Cdtr          PartyIdentification135                        `xml:"Cdtr" json:"Cdtr"`
	CdtrAcct      *CashAccount38                                `xml:"CdtrAcct" json:"CdtrAcct,omitempty"`
	RmtInf        *RemittanceInformation16                      `xml:"RmtInf" json:"RmtInf,omitempty"`
}

func (t *CreditTransferTransaction39) Validate(ctx context.Context) error {
	var iss isoval.Issues
	iss = append(iss, isoval.Field(ctx, "PmtId", &t.PmtId)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "IntrBkSttlmAmt", &t.IntrBkSttlmAmt)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "IntrBkSttlmDt", t.IntrBkSttlmDt)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "AccptncDtTm", t.AccptncDtTm)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "ChrgBr", t.ChrgBr)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "Dbtr", &t.Dbtr)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "DbtrAcct", t.DbtrAcct)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "DbtrAgt", &t.DbtrAgt)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "CdtrAgt", &t.CdtrAgt)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "Cdtr", &t.Cdtr)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "CdtrAcct", t.CdtrAcct)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "RmtInf", t.RmtInf)...)
	return iss.Err()
}

// PaymentIdentification7 carries end-to-end references for the transfer.
type PaymentIdentification7 struct {
	InstrId    *isotype.Max35Text        `xml:"InstrId" json:"InstrId,omitempty"`
	EndToEndId isotype.Max35Text         `xml:"EndToEndId" json:"EndToEndId"`
	TxId       *isotype.Max35Text        `xml:"TxId" json:"TxId,omitempty"`
	UETR       *isotype.UUIDv4Identifier `xml:"UETR" json:"UETR,omitempty"`
	ClrSysRef  *isotype.Max35Text        `xml:"ClrSysRef" json:"ClrSysRef,omitempty"`
}

func (p *PaymentIdentification7) Validate(ctx context.Context) error {
	var iss isoval.Issues
	iss = append(iss, isoval.Field(ctx, "InstrId", p.InstrId)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "EndToEndId", p.EndToEndId)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "TxId", p.TxId)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "UETR", p.UETR)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "ClrSysRef", p.ClrSysRef)...)
	return iss.Err()
}

// RemittanceInformation16 carries unstructured remittance lines.
type RemittanceInformation16 struct {
	Ustrd []isotype.Max140Text `xml:"Ustrd" json:"Ustrd,omitempty"`
}

func (r *RemittanceInformation16) Validate(ctx context.Context) error {
	return isoval.Slice(ctx, "Ustrd", r.Ustrd).Err()
}

// SupplementaryData1 mirrors the common extension slot; the envelope is
// unconstrained.
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

// SupplementaryDataEnvelope1 is always valid.
type SupplementaryDataEnvelope1 struct{}

func (SupplementaryDataEnvelope1) Validate(ctx context.Context) error { return nil }
