package message

import (
	json "github.com/goccy/go-json"

	isoval "github.com/open-payments/isoval"
)

// DecodeJSON reads one externally tagged JSON document, {"<tag>": {...}},
// optionally nested inside a "Document" wrapper, and dispatches it against
// the registry.
func (r *Registry) DecodeJSON(b []byte) (Document, error) {
	obj, err := singleKeyObject(b)
	if err != nil {
		return Document{}, err
	}
	if inner, ok := obj["Document"]; ok && len(obj) == 1 {
		if obj, err = singleKeyObject(inner); err != nil {
			return Document{}, isoval.Rebase(err, "Document")
		}
	}
	if len(obj) != 1 {
		return Document{}, isoval.Issues{{
			Code:    isoval.CodeInvalidType,
			Message: "expected a single-key object tagged by the message name",
			Params:  map[string]any{"keys": len(obj)},
		}}
	}
	for tag, raw := range obj {
		f, ok := r.Resolve(tag)
		if !ok {
			return Unknown(tag), nil
		}
		body := f()
		if err := json.Unmarshal(raw, body); err != nil {
			if iss, ok := isoval.AsIssues(err); ok {
				return Document{}, isoval.Rebase(iss, tag)
			}
			return Document{}, parseIssue(tag, err)
		}
		return Document{tag: tag, body: body}, nil
	}
	return Document{}, nil // unreachable; len(obj) == 1
}

// DecodeJSON dispatches against the default registry.
func DecodeJSON(b []byte) (Document, error) { return Default.DecodeJSON(b) }

func singleKeyObject(b []byte) (map[string]json.RawMessage, isoval.Issues) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(b, &obj); err != nil {
		return nil, parseIssue("", err)
	}
	return obj, nil
}
