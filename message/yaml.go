package message

import (
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// DecodeYAML normalizes one YAML document to JSON and dispatches it. YAML is
// accepted as an authoring convenience; the wire contract stays JSON-shaped.
func (r *Registry) DecodeYAML(b []byte) (Document, error) {
	var node any
	if err := yaml.Unmarshal(b, &node); err != nil {
		return Document{}, parseIssue("", err)
	}
	jb, err := json.Marshal(normalizeYAML(node))
	if err != nil {
		return Document{}, parseIssue("", err)
	}
	return r.DecodeJSON(jb)
}

// DecodeYAML dispatches against the default registry.
func DecodeYAML(b []byte) (Document, error) { return Default.DecodeYAML(b) }

// normalizeYAML rewrites yaml.v3 output into JSON-marshalable values. Maps
// with non-string keys are stringified key by key.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalizeYAML(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			ks, ok := k.(string)
			if !ok {
				ks = stringifyKey(k)
			}
			out[ks] = normalizeYAML(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeYAML(val)
		}
		return out
	default:
		return v
	}
}

func stringifyKey(k any) string {
	b, err := yaml.Marshal(k)
	if err != nil {
		return ""
	}
	// yaml.Marshal appends a newline to scalars.
	s := string(b)
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
