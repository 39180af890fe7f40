// Package message resolves the tagged union of ISO 20022 message variants: a
// single discriminator (the root element name) selects one concrete message
// body out of the registered set, and an unrecognized discriminator is a
// distinct terminal state rather than an error, so unsupported message types
// can be carried through unharmed.
package message

import (
	"fmt"
	"sort"

	isoval "github.com/open-payments/isoval"
)

// Message is implemented by every concrete message body.
type Message interface {
	isoval.Validatable
	// RootTag returns the discriminator element name of the message body,
	// e.g. "RctAck".
	RootTag() string
}

// Factory produces a fresh, zero-valued message body ready for decoding.
type Factory func() Message

// Registry maps discriminators to message factories. It is populated once and
// read-only afterwards; lookups are safe for concurrent use.
type Registry struct {
	variants map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{variants: map[string]Factory{}}
}

// Register adds a variant. Duplicate discriminators are a build-time defect
// of the source schemas and are rejected here rather than silently resolved.
func (r *Registry) Register(tag string, f Factory) error {
	if tag == "" {
		return fmt.Errorf("message: empty discriminator")
	}
	if f == nil {
		return fmt.Errorf("message: nil factory for %q", tag)
	}
	if _, dup := r.variants[tag]; dup {
		return fmt.Errorf("message: duplicate discriminator %q", tag)
	}
	r.variants[tag] = f
	return nil
}

// MustRegister is Register for static tables built at init.
func (r *Registry) MustRegister(tag string, f Factory) {
	if err := r.Register(tag, f); err != nil {
		panic(err)
	}
}

// Resolve looks up the variant for a discriminator. The lookup is total:
// every tag yields either a factory or ok=false, never a panic.
func (r *Registry) Resolve(tag string) (Factory, bool) {
	f, ok := r.variants[tag]
	return f, ok
}

// Tags returns the registered discriminators in sorted order.
func (r *Registry) Tags() []string {
	out := make([]string, 0, len(r.variants))
	for tag := range r.variants {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
