package admi

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/open-payments/isoval/isotype"
)

// StatusReceived is the handling status reported for a message that was
// received and accepted for processing.
const StatusReceived = "RCVD"

// AcknowledgeReceipt builds a positive receipt acknowledgement for the
// message identified by ref. msgNm optionally names the acknowledged message
// definition (e.g. "pacs.008.001.08"). The acknowledgement gets a fresh
// 32-character message id so it fits Max35Text.
func AcknowledgeReceipt(ref, msgNm string) *ReceiptAcknowledgementV01 {
	now := isotype.ISODateTime(time.Now().UTC().Format(time.RFC3339))
	ack := &ReceiptAcknowledgementV01{
		MsgId: MessageHeader10{
			MsgId:   isotype.Max35Text(newMessageID()),
			CreDtTm: &now,
		},
		Rpt: []ReceiptAcknowledgementReport2{{
			RltdRef: MessageReference1{Ref: isotype.Max35Text(ref)},
			ReqHdlg: RequestHandling2{
				StsCd:   StatusReceived,
				StsDtTm: &now,
			},
		}},
	}
	if msgNm != "" {
		nm := isotype.Max35Text(msgNm)
		ack.Rpt[0].RltdRef.MsgNm = &nm
	}
	return ack
}

func newMessageID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
