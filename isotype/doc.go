// Package isotype declares the constrained primitives of the ISO 20022
// vocabulary shared across message families: bounded text, pattern-checked
// identifiers, closed code sets, ISO dates, and decimal currency amounts.
//
// Construction never validates. A primitive holds whatever raw value the
// decoder produced; Validate applies the single constraint the type was
// derived from.
package isotype
