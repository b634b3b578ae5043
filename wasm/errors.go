package wasm

import "errors"

// Kind is a stable category for programmatic error handling.
//
// These categories are intended to remain stable across versions.
// Callers should branch on Kind rather than matching error strings.
//
// NOTE: Error() strings are intentionally kept human-readable and may evolve.
// Use errors.As to extract *Error for structured handling.
type Kind string

const (
	// KindSerialize: an operation could not be encoded in the ledger's
	// binary format. A schema or programming defect; never retried.
	KindSerialize Kind = "Serialize"
	// KindQuery: the query subsystem or target contract failed the request.
	KindQuery Kind = "Query"
	// KindDeserialize: a response did not match the expected schema,
	// typically a version skew between caller and target contract.
	KindDeserialize Kind = "Deserialize"
	KindCrypto      Kind = "Crypto"
	KindInternal    Kind = "Internal"
)

// Error is the library's structured error type.
//
// Op names the operation that failed (e.g. "cw721.OwnerOf").
// Message is intended for humans; do not match on it.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Op == "" {
		return e.Message
	}
	return e.Op + ": " + e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// NewError constructs a structured error without a cause.
func NewError(kind Kind, op, msg string) error {
	return &Error{Kind: kind, Op: op, Message: msg}
}

// WrapError constructs a structured error preserving cause for errors.Is/As.
func WrapError(kind Kind, op, msg string, cause error) error {
	if cause == nil {
		return NewError(kind, op, msg)
	}
	return &Error{Kind: kind, Op: op, Message: msg, Cause: cause}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
