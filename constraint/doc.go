// Package constraint implements the fixed constraint vocabulary inherited
// from the XML Schema source: rune-counted length bounds, full-match regex
// patterns, enumeration membership, decimal numeric bounds, and ISO 8601
// date/time lexical checks. Each check returns nil issues on success; no
// check has side effects or depends on external state.
package constraint
