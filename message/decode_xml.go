package message

import (
	"bytes"
	"encoding/xml"
	"io"

	isoval "github.com/open-payments/isoval"
)

// The ISO 20022 wire format nests the union inside a <Document> wrapper whose
// first child is the discriminator. Decode accepts both the wrapper and a
// bare discriminator root; namespaces are ignored, only local names matter.

// DecodeXML reads one tagged XML document and dispatches it against the
// registry. Malformed input yields decode issues (parse_error/invalid_type),
// which are distinct from validation issues; an unrecognized discriminator
// yields an Unknown document and no error.
func (r *Registry) DecodeXML(rd io.Reader) (Document, error) {
	dec := xml.NewDecoder(rd)
	start, err := nextStart(dec)
	if err != nil {
		return Document{}, parseIssue("", err)
	}
	if start.Name.Local == "Document" {
		start, err = nextStart(dec)
		if err != nil {
			return Document{}, parseIssue("Document", err)
		}
	}
	tag := start.Name.Local
	f, ok := r.Resolve(tag)
	if !ok {
		return Unknown(tag), nil
	}
	body := f()
	if err := dec.DecodeElement(body, &start); err != nil {
		if iss, ok := isoval.AsIssues(err); ok {
			return Document{}, isoval.Rebase(iss, tag)
		}
		return Document{}, parseIssue(tag, err)
	}
	return Document{tag: tag, body: body}, nil
}

// DecodeXMLBytes is DecodeXML over a byte slice.
func (r *Registry) DecodeXMLBytes(b []byte) (Document, error) {
	return r.DecodeXML(bytes.NewReader(b))
}

// DecodeXML dispatches against the default registry.
func DecodeXML(rd io.Reader) (Document, error) { return Default.DecodeXML(rd) }

// DecodeXMLBytes dispatches against the default registry.
func DecodeXMLBytes(b []byte) (Document, error) { return Default.DecodeXMLBytes(b) }

// nextStart advances to the next element start, skipping character data,
// comments and directives.
func nextStart(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			return xml.StartElement{}, err
		}
		if se, ok := tok.(xml.StartElement); ok {
			return se, nil
		}
	}
}

func parseIssue(path string, err error) isoval.Issues {
	return isoval.Issues{{
		Path:    path,
		Code:    isoval.CodeParseError,
		Message: err.Error(),
		Cause:   err,
	}}
}
