package admi

import (
	"context"

	isoval "github.com/open-payments/isoval"
	"github.com/open-payments/isoval/isotype"
)

// SystemEventNotificationV02 (admi.004.001.02) notifies participants of a
// system event such as the start or end of a settlement cycle.
type SystemEventNotificationV02 struct {
	EvtInf Event2 `xml:"EvtInf" json:"EvtInf"`
}

func (m *SystemEventNotificationV02) RootTag() string { return "SysEvtNtfctn" }

func (m *SystemEventNotificationV02) Validate(ctx context.Context) error {
	return isoval.Field(ctx, "EvtInf", &m.EvtInf).Err()
}

// Event2 describes the event, with optional free-form parameters.
type Event2 struct {
	EvtCd    isotype.Max4AlphaNumericText `xml:"EvtCd" json:"EvtCd"`
	EvtParam []isotype.Max35Text          `xml:"EvtParam" json:"EvtParam,omitempty"`
	EvtDesc  *isotype.Max1000Text         `xml:"EvtDesc" json:"EvtDesc,omitempty"`
	EvtTm    *isotype.ISODateTime         `xml:"EvtTm" json:"EvtTm,omitempty"`
}

func (e *Event2) Validate(ctx context.Context) error {
	var iss isoval.Issues
	iss = append(iss, isoval.Field(ctx, "EvtCd", e.EvtCd)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Slice(ctx, "EvtParam", e.EvtParam)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "EvtDesc", e.EvtDesc)...)
	if isoval.Done(ctx, iss) {
		return iss
	}
	iss = append(iss, isoval.Field(ctx, "EvtTm", e.EvtTm)...)
	return iss.Err()
}
