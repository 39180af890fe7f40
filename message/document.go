package message

import (
	"context"

	json "github.com/goccy/go-json"

	isoval "github.com/open-payments/isoval"
)

// Document is the terminal state of variant dispatch: either a resolved
// message body, or an unknown discriminator preserved as-is.
type Document struct {
	tag  string
	body Message
}

// Resolved wraps a decoded message body.
func Resolved(body Message) Document {
	return Document{tag: body.RootTag(), body: body}
}

// Unknown records a discriminator this registry does not know. Callers must
// check Known before using the body.
func Unknown(tag string) Document {
	return Document{tag: tag}
}

// Tag returns the discriminator the document was dispatched on.
func (d Document) Tag() string { return d.tag }

// Known reports whether dispatch resolved to a registered variant.
func (d Document) Known() bool { return d.body != nil }

// Body returns the resolved message body, nil for unknown documents.
func (d Document) Body() Message { return d.body }

// Validate walks the resolved body and rebases every issue under the
// discriminator, so failures read like
// "RctAck.Rpt[0].ReqHdlg.StsCd". Unknown documents are vacuously valid; the
// Known check is the caller's decision point, not an error.
func (d Document) Validate(ctx context.Context) error {
	if d.body == nil {
		return nil
	}
	return isoval.Rebase(d.body.Validate(ctx), d.tag).Err()
}

// MarshalJSON emits the externally tagged wire shape {"<tag>": {...}}.
func (d Document) MarshalJSON() ([]byte, error) {
	if d.body == nil {
		return nil, isoval.Issues{{
			Path:    d.tag,
			Code:    isoval.CodeInvalidType,
			Message: "cannot marshal unknown message",
		}}
	}
	return json.Marshal(map[string]Message{d.tag: d.body})
}
