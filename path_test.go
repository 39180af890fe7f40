package isoval_test

import (
	"errors"
	"testing"

	isoval "github.com/open-payments/isoval"
)

func TestJoinPath(t *testing.T) {
	cases := []struct {
		base, child, want string
	}{
		{"", "", ""},
		{"GrpHdr", "", "GrpHdr"},
		{"", "SttlmMtd", "SttlmMtd"},
		{"GrpHdr", "SttlmInf.SttlmMtd", "GrpHdr.SttlmInf.SttlmMtd"},
		{"Rpt", "[0]", "Rpt[0]"},
	}
	for _, c := range cases {
		if got := isoval.JoinPath(c.base, c.child); got != c.want {
			t.Errorf("JoinPath(%q, %q) = %q, want %q", c.base, c.child, got, c.want)
		}
	}
}

func TestIndexSegment(t *testing.T) {
	if got := isoval.IndexSegment("Rpt", 0); got != "Rpt[0]" {
		t.Errorf("IndexSegment = %q, want Rpt[0]", got)
	}
	if got := isoval.IndexSegment("CdtTrfTxInf", 12); got != "CdtTrfTxInf[12]" {
		t.Errorf("IndexSegment = %q, want CdtTrfTxInf[12]", got)
	}
}

func TestRebase(t *testing.T) {
	if got := isoval.Rebase(nil, "GrpHdr"); got != nil {
		t.Fatalf("Rebase(nil) = %v, want nil", got)
	}

	child := isoval.Issues{
		{Path: "", Code: isoval.CodeTooShort},
		{Path: "StsCd", Code: isoval.CodePattern},
	}
	got := isoval.Rebase(child, "ReqHdlg")
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Path != "ReqHdlg" {
		t.Errorf("got[0].Path = %q, want ReqHdlg", got[0].Path)
	}
	if got[1].Path != "ReqHdlg.StsCd" {
		t.Errorf("got[1].Path = %q, want ReqHdlg.StsCd", got[1].Path)
	}
	// The originals must not be mutated.
	if child[1].Path != "StsCd" {
		t.Errorf("child mutated: %q", child[1].Path)
	}
}

func TestRebaseForeignError(t *testing.T) {
	got := isoval.Rebase(errors.New("boom"), "Rpt[0]")
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Code != isoval.CodeParseError || got[0].Path != "Rpt[0]" {
		t.Errorf("got %+v, want parse_error at Rpt[0]", got[0])
	}
	if got[0].Cause == nil {
		t.Error("cause not preserved")
	}
}
