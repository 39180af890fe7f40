package isotype_test

import (
	"context"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	isoval "github.com/open-payments/isoval"
	"github.com/open-payments/isoval/isotype"
)

func firstCode(t *testing.T, err error) string {
	t.Helper()
	iss, ok := isoval.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("want issues, got %v", err)
	}
	return iss[0].Code
}

func TestMax35Text(t *testing.T) {
	ctx := context.Background()
	if err := isotype.Max35Text("ABC-123").Validate(ctx); err != nil {
		t.Errorf("valid: %v", err)
	}
	if got := firstCode(t, isotype.Max35Text("").Validate(ctx)); got != isoval.CodeTooShort {
		t.Errorf("empty = %s", got)
	}
	long := isotype.Max35Text(strings.Repeat("x", 36))
	if got := firstCode(t, long.Validate(ctx)); got != isoval.CodeTooLong {
		t.Errorf("36 chars = %s", got)
	}
}

func TestMax4AlphaNumericText(t *testing.T) {
	ctx := context.Background()
	if err := isotype.Max4AlphaNumericText("RCVD").Validate(ctx); err != nil {
		t.Errorf("valid: %v", err)
	}
	if got := firstCode(t, isotype.Max4AlphaNumericText("").Validate(ctx)); got != isoval.CodeTooShort {
		t.Errorf("empty = %s", got)
	}
	if got := firstCode(t, isotype.Max4AlphaNumericText("RC-D").Validate(ctx)); got != isoval.CodePattern {
		t.Errorf("hyphen = %s", got)
	}
}

func TestCountryCode(t *testing.T) {
	ctx := context.Background()
	if err := isotype.CountryCode("US").Validate(ctx); err != nil {
		t.Errorf("US: %v", err)
	}
	for _, bad := range []string{"USA", "us", "U", ""} {
		if got := firstCode(t, isotype.CountryCode(bad).Validate(ctx)); got != isoval.CodePattern {
			t.Errorf("CountryCode(%q) = %s", bad, got)
		}
	}
}

func TestAnyBIC(t *testing.T) {
	ctx := context.Background()
	for _, good := range []string{"BANKUS33", "BANKUS33XXX"} {
		if err := isotype.AnyBICDec2014Identifier(good).Validate(ctx); err != nil {
			t.Errorf("AnyBIC(%q): %v", good, err)
		}
	}
	for _, bad := range []string{"BANKUS3", "bankus33", "BANKUS33XX"} {
		if got := firstCode(t, isotype.AnyBICDec2014Identifier(bad).Validate(ctx)); got != isoval.CodePattern {
			t.Errorf("AnyBIC(%q) = %s", bad, got)
		}
	}
}

func TestLEIIdentifier(t *testing.T) {
	ctx := context.Background()
	if err := isotype.LEIIdentifier("5493001RKR55V4X61F71").Validate(ctx); err != nil {
		t.Errorf("valid LEI: %v", err)
	}
	if got := firstCode(t, isotype.LEIIdentifier("5493001RKR55V4X61F7").Validate(ctx)); got != isoval.CodePattern {
		t.Errorf("19 chars = %s", got)
	}
}

func TestMax15NumericText(t *testing.T) {
	ctx := context.Background()
	if err := isotype.Max15NumericText("1").Validate(ctx); err != nil {
		t.Errorf("valid: %v", err)
	}
	if got := firstCode(t, isotype.Max15NumericText("1x").Validate(ctx)); got != isoval.CodePattern {
		t.Errorf("non-digit = %s", got)
	}
}

func TestUUIDv4Identifier(t *testing.T) {
	ctx := context.Background()
	if err := isotype.UUIDv4Identifier("8c2569f1-02f0-4d10-9f8b-3a1f6e2d4c5a").Validate(ctx); err != nil {
		t.Errorf("valid UETR: %v", err)
	}
	// Upper case is outside the lexical space.
	if got := firstCode(t, isotype.UUIDv4Identifier("8C2569F1-02F0-4D10-9F8B-3A1F6E2D4C5A").Validate(ctx)); got != isoval.CodePattern {
		t.Errorf("upper case = %s", got)
	}
}

func TestCodeSets(t *testing.T) {
	ctx := context.Background()
	if err := isotype.SettlementMethod1Code("CLRG").Validate(ctx); err != nil {
		t.Errorf("CLRG: %v", err)
	}
	if got := firstCode(t, isotype.SettlementMethod1Code("XXXX").Validate(ctx)); got != isoval.CodeInvalidEnum {
		t.Errorf("XXXX = %s", got)
	}
	if err := isotype.ChargeBearerType1Code("SLEV").Validate(ctx); err != nil {
		t.Errorf("SLEV: %v", err)
	}
}

func TestISODate(t *testing.T) {
	ctx := context.Background()
	if err := isotype.ISODate("2026-08-28").Validate(ctx); err != nil {
		t.Errorf("valid: %v", err)
	}
	if got := firstCode(t, isotype.ISODate("08/28/2026").Validate(ctx)); got != isoval.CodeInvalidFormat {
		t.Errorf("slashes = %s", got)
	}
}

func TestAmountValidate(t *testing.T) {
	ctx := context.Background()
	a := isotype.ActiveCurrencyAndAmount{Ccy: "USD", Value: decimal.RequireFromString("1840.25")}
	if err := a.Validate(ctx); err != nil {
		t.Fatalf("valid amount: %v", err)
	}

	neg := isotype.ActiveCurrencyAndAmount{Ccy: "USD", Value: decimal.RequireFromString("-1")}
	iss, _ := isoval.AsIssues(neg.Validate(ctx))
	if len(iss) != 1 || iss[0].Code != isoval.CodeOutOfRange || iss[0].Path != "Amt" {
		t.Fatalf("negative amount = %v", iss)
	}

	bad := isotype.ActiveCurrencyAndAmount{Ccy: "usd", Value: decimal.Zero}
	iss, _ = isoval.AsIssues(bad.Validate(ctx))
	if len(iss) != 1 || iss[0].Path != "Ccy" {
		t.Fatalf("bad currency = %v", iss)
	}
}

func TestAmountXMLRoundTrip(t *testing.T) {
	in := `<IntrBkSttlmAmt Ccy="USD">1840.25</IntrBkSttlmAmt>`
	var a isotype.ActiveCurrencyAndAmount
	if err := xml.Unmarshal([]byte(in), &a); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if a.Ccy != "USD" || !a.Value.Equal(decimal.RequireFromString("1840.25")) {
		t.Fatalf("decoded %+v", a)
	}

	out, err := xml.Marshal(a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(out), `Ccy="USD"`) || !strings.Contains(string(out), "1840.25") {
		t.Errorf("marshaled %s", out)
	}
}

func TestAmountXMLRejectsNonDecimal(t *testing.T) {
	var a isotype.ActiveCurrencyAndAmount
	err := xml.Unmarshal([]byte(`<Amt Ccy="USD">one</Amt>`), &a)
	if err == nil {
		t.Fatal("non-decimal chardata accepted")
	}
}
