package message

import (
	"github.com/open-payments/isoval/message/admi"
	"github.com/open-payments/isoval/message/pacs"
)

// Default holds every message variant this module understands. It is built
// once at init and never mutated afterwards; duplicate discriminators panic
// here because they are a defect of the generated table, not a runtime
// condition.
var Default = NewRegistry()

func init() {
	Default.MustRegister("SysEvtNtfctn", func() Message { return new(admi.SystemEventNotificationV02) })
	Default.MustRegister("RctAck", func() Message { return new(admi.ReceiptAcknowledgementV01) })
	Default.MustRegister("FIToFICstmrCdtTrf", func() Message { return new(pacs.FIToFICustomerCreditTransferV08) })
}

// Resolve looks up a discriminator in the default registry.
func Resolve(tag string) (Factory, bool) { return Default.Resolve(tag) }

// Tags lists the default registry's discriminators in sorted order.
func Tags() []string { return Default.Tags() }
