// Package salonerr defines the error taxonomy shared by the coordinators,
// the session gate, and the HTTP layer. Every failure that crosses a package
// boundary is tagged with exactly one Kind so handlers can map it to a status
// code without string matching.
package salonerr

import (
	"errors"
	"fmt"
)

// Kind tags a failure class.
type Kind int

const (
	// KindRemoteCallFailed marks a network or backend error. No partial
	// effect is assumed; the previous cache snapshot stays valid.
	KindRemoteCallFailed Kind = iota + 1
	// KindValidationRejected marks caller-side rejection. The remote call
	// was never issued.
	KindValidationRejected
	// KindAuthDenied marks a credential check that returned false.
	KindAuthDenied
	// KindPermissionMismatch marks the unsafe state: the local session says
	// authenticated while the backend denies admin permission. The gate has
	// already been reset when this surfaces.
	KindPermissionMismatch
	// KindVerificationInFlight marks a credential submission rejected
	// because another one is still being verified.
	KindVerificationInFlight
)

func (k Kind) String() string {
	switch k {
	case KindRemoteCallFailed:
		return "remote_call_failed"
	case KindValidationRejected:
		return "validation_rejected"
	case KindAuthDenied:
		return "auth_denied"
	case KindPermissionMismatch:
		return "permission_mismatch"
	case KindVerificationInFlight:
		return "verification_in_flight"
	}
	return "unknown"
}

// Error carries a Kind, a message, and an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New creates a tagged error.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap tags an underlying error with a kind and message.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Remotef is shorthand for a RemoteCallFailed wrapping err.
func Remotef(err error, format string, args ...interface{}) *Error {
	return &Error{Kind: KindRemoteCallFailed, Message: fmt.Sprintf(format, args...), Err: err}
}

// Validationf is shorthand for a ValidationRejected error.
func Validationf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidationRejected, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the Kind from err, or 0 if err carries none.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return 0
}

// Is lets errors.Is match on bare kinds via Sentinel.
func (e *Error) Is(target error) bool {
	var se *Error
	if errors.As(target, &se) {
		return se.Kind == e.Kind && (se.Message == "" || se.Message == e.Message)
	}
	return false
}

// Sentinel returns a bare error of the given kind for use with errors.Is.
func Sentinel(kind Kind) error {
	return &Error{Kind: kind}
}
