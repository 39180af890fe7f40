// Package isoval provides the validation protocol shared by every ISO 20022 /
// FedNow message type in this module: a structured issue model with
// path-qualified errors, dotted path rebasing, and the Validatable capability
// interface that composites and constrained primitives implement.
//
// Validation is explicit and separate from construction: a decoded message
// tree may hold values that violate their own constraints until Validate is
// invoked on the root. Validation is a pure function over the tree; it keeps
// no state, performs no I/O, and is safe to run concurrently over independent
// documents.
package isoval
