package isoval

import (
	"context"
	"reflect"
)

// Validatable is the capability interface implemented once per composite and
// constrained primitive. Implementations must be pure: same tree in, same
// outcome out, with no retained state between calls.
type Validatable interface {
	Validate(ctx context.Context) error
}

// Field validates a child field and rebases its issues under name. A nil
// value (absent optional field) is vacuously valid.
func Field(ctx context.Context, name string, v Validatable) Issues {
	if v == nil || isNilValue(v) {
		return nil
	}
	return Rebase(v.Validate(ctx), name)
}

// Slice validates every element of a repeated field in sequence order,
// rebasing issues under name[i]. Element order is preserved in the output so
// that the first reported issue belongs to the first offending element.
func Slice[T any, PT interface {
	Validatable
	*T
}](ctx context.Context, name string, items []T) Issues {
	var iss Issues
	for i := range items {
		child := PT(&items[i]).Validate(ctx)
		if child == nil {
			continue
		}
		iss = AppendIssues(iss, Rebase(child, IndexSegment(name, i))...)
		if IsFailFast(ctx) {
			return iss
		}
	}
	return iss
}

// Done reports whether a composite should stop walking its remaining fields.
func Done(ctx context.Context, iss Issues) bool {
	return len(iss) > 0 && IsFailFast(ctx)
}

// ExactlyOne enforces choice arity at decode time: exactly one branch of a
// closed choice must be present. The violation is structural, not a
// validation outcome, and carries the choice type name as a hint.
func ExactlyOne(name string, present ...bool) error {
	n := 0
	for _, p := range present {
		if p {
			n++
		}
	}
	switch {
	case n == 0:
		return Issues{{Code: CodeChoiceNone, Message: "no choice branch present", Hint: name}}
	case n > 1:
		return Issues{{Code: CodeChoiceAmbiguous, Message: "more than one choice branch present", Hint: name}}
	}
	return nil
}

// isNilValue detects typed-nil pointers hidden behind the interface.
func isNilValue(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
