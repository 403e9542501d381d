// Package errors defines typed errors with categories for user-friendly reporting.
// It provides a structured approach to error handling with machine-readable error kinds
// and human-friendly messages. The kinds mirror the failure taxonomy of the proxy:
// fatal startup errors, per-connection protocol errors, and per-statement errors
// that leave the session usable.
//
// The package supports wrapping underlying errors while maintaining error kind
// information, making it easier to handle different types of failures appropriately.
package errors

import "fmt"

// Kind is a machine-readable error category.
type Kind string

const (
	// ConfigMissing indicates a required environment variable was not set.
	ConfigMissing Kind = "config_missing"
	// BackendUnreachable indicates the PostgreSQL backend could not be reached.
	BackendUnreachable Kind = "backend_unreachable"
	// BindFailed indicates the MySQL listener could not bind its address.
	BindFailed Kind = "bind_failed"
	// AuthRejected indicates a client failed the handshake credential check.
	AuthRejected Kind = "auth_rejected"
	// StatementFailed indicates a statement failed against the backend.
	StatementFailed Kind = "statement_failed"
	// UnsupportedType indicates a result column type the wire protocol mapping
	// cannot express.
	UnsupportedType Kind = "unsupported_type"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying error to errors.Is/As chains.
func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// KindOf returns the kind of err if it is an *E, or the empty string.
func KindOf(err error) Kind {
	if e, ok := err.(*E); ok {
		return e.Kind
	}
	return ""
}
