package message_test

import (
	"context"
	"strings"
	"testing"

	isoval "github.com/open-payments/isoval"
	"github.com/open-payments/isoval/message"
	"github.com/open-payments/isoval/message/admi"
	"github.com/open-payments/isoval/message/pacs"
)

const rctAckXML = `<?xml version="1.0" encoding="UTF-8"?>
<Document xmlns="urn:iso:std:iso:20022:tech:xsd:admi.007.001.01">
  <RctAck>
    <MsgId>
      <MsgId>ACK20260828001</MsgId>
      <CreDtTm>2026-08-28T09:30:00Z</CreDtTm>
    </MsgId>
    <Rpt>
      <RltdRef>
        <Ref>M20260828001</Ref>
        <MsgNm>pacs.008.001.08</MsgNm>
      </RltdRef>
      <ReqHdlg>
        <StsCd>RCVD</StsCd>
      </ReqHdlg>
    </Rpt>
  </RctAck>
</Document>`

const rctAckJSON = `{
  "RctAck": {
    "MsgId": {"MsgId": "ACK20260828001", "CreDtTm": "2026-08-28T09:30:00Z"},
    "Rpt": [
      {
        "RltdRef": {"Ref": "M20260828001", "MsgNm": "pacs.008.001.08"},
        "ReqHdlg": {"StsCd": "RCVD"}
      }
    ]
  }
}`

const rctAckYAML = `RctAck:
  MsgId:
    MsgId: ACK20260828001
    CreDtTm: "2026-08-28T09:30:00Z"
  Rpt:
    - RltdRef:
        Ref: M20260828001
        MsgNm: pacs.008.001.08
      ReqHdlg:
        StsCd: RCVD
`

func mustAck(t *testing.T, doc message.Document, err error) *admi.ReceiptAcknowledgementV01 {
	t.Helper()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !doc.Known() || doc.Tag() != "RctAck" {
		t.Fatalf("doc = %q known=%v", doc.Tag(), doc.Known())
	}
	body, ok := doc.Body().(*admi.ReceiptAcknowledgementV01)
	if !ok {
		t.Fatalf("body = %T", doc.Body())
	}
	return body
}

func TestDecodeXML(t *testing.T) {
	doc, err := message.DecodeXML(strings.NewReader(rctAckXML))
	ack := mustAck(t, doc, err)
	if ack.MsgId.MsgId != "ACK20260828001" {
		t.Errorf("MsgId = %q", ack.MsgId.MsgId)
	}
	if len(ack.Rpt) != 1 || ack.Rpt[0].ReqHdlg.StsCd != "RCVD" {
		t.Errorf("Rpt = %+v", ack.Rpt)
	}
	if err := doc.Validate(context.Background()); err != nil {
		t.Errorf("Validate = %v", err)
	}
}

func TestDecodeXMLBareRoot(t *testing.T) {
	// Without the <Document> wrapper the root element is the discriminator.
	bare := `<RctAck><MsgId><MsgId>A1</MsgId></MsgId><Rpt><RltdRef><Ref>R1</Ref></RltdRef><ReqHdlg><StsCd>RCVD</StsCd></ReqHdlg></Rpt></RctAck>`
	doc, err := message.DecodeXML(strings.NewReader(bare))
	mustAck(t, doc, err)
}

func TestDecodeJSON(t *testing.T) {
	doc, err := message.DecodeJSON([]byte(rctAckJSON))
	ack := mustAck(t, doc, err)
	if ack.Rpt[0].RltdRef.Ref != "M20260828001" {
		t.Errorf("Ref = %q", ack.Rpt[0].RltdRef.Ref)
	}
}

func TestDecodeJSONDocumentWrapper(t *testing.T) {
	wrapped := `{"Document": ` + rctAckJSON + `}`
	doc, err := message.DecodeJSON([]byte(wrapped))
	mustAck(t, doc, err)
}

func TestDecodeYAMLMatchesJSON(t *testing.T) {
	fromYAML, err := message.DecodeYAML([]byte(rctAckYAML))
	y := mustAck(t, fromYAML, err)
	fromJSON, err := message.DecodeJSON([]byte(rctAckJSON))
	j := mustAck(t, fromJSON, err)
	if y.MsgId.MsgId != j.MsgId.MsgId || y.Rpt[0].RltdRef.Ref != j.Rpt[0].RltdRef.Ref {
		t.Errorf("yaml %+v != json %+v", y, j)
	}
}

func TestDecodeUnknownTag(t *testing.T) {
	doc, err := message.DecodeXML(strings.NewReader(`<Document><FooBarBaz><X>1</X></FooBarBaz></Document>`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Known() {
		t.Fatal("unknown tag resolved")
	}
	if doc.Tag() != "FooBarBaz" {
		t.Errorf("tag = %q", doc.Tag())
	}

	doc, err = message.DecodeJSON([]byte(`{"FooBarBaz": {}}`))
	if err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if doc.Known() {
		t.Fatal("unknown json tag resolved")
	}
}

func TestDecodeMalformedInput(t *testing.T) {
	_, err := message.DecodeXML(strings.NewReader("<"))
	iss, ok := isoval.AsIssues(err)
	if !ok || iss[0].Code != isoval.CodeParseError {
		t.Fatalf("malformed xml = %v", err)
	}

	_, err = message.DecodeJSON([]byte("{"))
	iss, ok = isoval.AsIssues(err)
	if !ok || iss[0].Code != isoval.CodeParseError {
		t.Fatalf("malformed json = %v", err)
	}
}

func TestDecodeJSONMultiKey(t *testing.T) {
	_, err := message.DecodeJSON([]byte(`{"RctAck": {}, "SysEvtNtfctn": {}}`))
	iss, ok := isoval.AsIssues(err)
	if !ok || iss[0].Code != isoval.CodeInvalidType {
		t.Fatalf("multi-key object = %v", err)
	}
}

func TestDecodeJSONAmbiguousChoice(t *testing.T) {
	// Two branches of PartyIdentification120Choice present at once.
	bad := `{
  "RctAck": {
    "MsgId": {"MsgId": "A1"},
    "Rpt": [
      {
        "RltdRef": {
          "Ref": "R1",
          "RefIssr": {"Id": {"AnyBIC": "BANKUS33", "PrtryId": {"Id": "X", "Issr": "Y"}}}
        },
        "ReqHdlg": {"StsCd": "RCVD"}
      }
    ]
  }
}`
	if _, err := message.DecodeJSON([]byte(bad)); err == nil {
		t.Fatal("ambiguous choice accepted at decode")
	}
}

func TestDecodePacsXML(t *testing.T) {
	in := `<Document xmlns="urn:iso:std:iso:20022:tech:xsd:pacs.008.001.08">
  <FIToFICstmrCdtTrf>
    <GrpHdr>
      <MsgId>M20260828001</MsgId>
      <CreDtTm>2026-08-28T09:30:00Z</CreDtTm>
      <NbOfTxs>1</NbOfTxs>
      <SttlmInf><SttlmMtd>CLRG</SttlmMtd></SttlmInf>
    </GrpHdr>
    <CdtTrfTxInf>
      <PmtId><EndToEndId>E2E-1</EndToEndId></PmtId>
      <IntrBkSttlmAmt Ccy="USD">1840.25</IntrBkSttlmAmt>
      <ChrgBr>SLEV</ChrgBr>
      <Dbtr><Nm>Acme Corp</Nm></Dbtr>
      <DbtrAgt><FinInstnId><BICFI>BANKUS33</BICFI></FinInstnId></DbtrAgt>
      <CdtrAgt><FinInstnId><BICFI>BANKGB2L</BICFI></FinInstnId></CdtrAgt>
      <Cdtr><Nm>Globex Ltd</Nm><CtryOfRes>GB</CtryOfRes></Cdtr>
    </CdtTrfTxInf>
  </FIToFICstmrCdtTrf>
</Document>`
	doc, err := message.DecodeXML(strings.NewReader(in))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	body, ok := doc.Body().(*pacs.FIToFICustomerCreditTransferV08)
	if !ok {
		t.Fatalf("body = %T", doc.Body())
	}
	if got := body.CdtTrfTxInf[0].IntrBkSttlmAmt.Value.String(); got != "1840.25" {
		t.Errorf("amount = %s", got)
	}
	if err := doc.Validate(context.Background()); err != nil {
		t.Errorf("Validate = %v", err)
	}
}
