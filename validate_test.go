package isoval_test

import (
	"context"
	"testing"

	isoval "github.com/open-payments/isoval"
)

// leaf fails with a fixed issue unless ok is set.
type leaf struct {
	ok bool
}

func (l *leaf) Validate(ctx context.Context) error {
	if l.ok {
		return nil
	}
	return isoval.Issues{{Code: isoval.CodeTooShort}}.Err()
}

func TestFieldNil(t *testing.T) {
	ctx := context.Background()
	if got := isoval.Field(ctx, "Opt", nil); got != nil {
		t.Fatalf("Field(nil) = %v", got)
	}
	var typed *leaf
	if got := isoval.Field(ctx, "Opt", typed); got != nil {
		t.Fatalf("Field(typed nil) = %v", got)
	}
}

func TestFieldRebases(t *testing.T) {
	got := isoval.Field(context.Background(), "StsCd", &leaf{})
	if len(got) != 1 || got[0].Path != "StsCd" {
		t.Fatalf("Field = %+v, want one issue at StsCd", got)
	}
}

func TestSliceIndexes(t *testing.T) {
	items := []leaf{{ok: true}, {}, {}}
	got := isoval.Slice(context.Background(), "Rpt", items)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Path != "Rpt[1]" || got[1].Path != "Rpt[2]" {
		t.Errorf("paths = %q, %q", got[0].Path, got[1].Path)
	}
}

func TestSliceFailFast(t *testing.T) {
	ctx := isoval.WithFailFast(context.Background(), true)
	items := []leaf{{}, {}, {}}
	got := isoval.Slice(ctx, "Rpt", items)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1 under fail-fast", len(got))
	}
	if got[0].Path != "Rpt[0]" {
		t.Errorf("path = %q, want Rpt[0]", got[0].Path)
	}
}

func TestDone(t *testing.T) {
	ctx := context.Background()
	iss := isoval.Issues{{Code: isoval.CodePattern}}
	if isoval.Done(ctx, iss) {
		t.Error("Done without fail-fast = true")
	}
	ctx = isoval.WithFailFast(ctx, true)
	if !isoval.Done(ctx, iss) {
		t.Error("Done with fail-fast and issues = false")
	}
	if isoval.Done(ctx, nil) {
		t.Error("Done with no issues = true")
	}
}

func TestExactlyOne(t *testing.T) {
	if err := isoval.ExactlyOne("Party38Choice", true, false); err != nil {
		t.Fatalf("one branch: %v", err)
	}

	err := isoval.ExactlyOne("Party38Choice", false, false)
	iss, ok := isoval.AsIssues(err)
	if !ok || iss[0].Code != isoval.CodeChoiceNone {
		t.Fatalf("no branch: %v", err)
	}

	err = isoval.ExactlyOne("Party38Choice", true, true)
	iss, ok = isoval.AsIssues(err)
	if !ok || iss[0].Code != isoval.CodeChoiceAmbiguous {
		t.Fatalf("two branches: %v", err)
	}
	if iss[0].Hint != "Party38Choice" {
		t.Errorf("hint = %q", iss[0].Hint)
	}
}
