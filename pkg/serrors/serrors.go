// Package serrors provides semantic errors: sentinel kinds that callers can
// branch on with errors.Is/As, combined with free-form messages and wrapped
// causes. HTTP handlers map kinds to status codes and response bodies.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind. It allows distinguishing semantic kinds from ordinary errors.
type Kind interface {
	error
	isKind()
}

// kind is an unexported implementation of Kind used as a sentinel value for a
// semantic error category.
type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel) with the provided
// name. Kinds are comparable and can be used with errors.Is/As through the
// serrors.Error wrapper.
func NewKind(name string) Kind { return kind{s: name} }

// Kinds used across the admin operations service. They are sentinels and can
// be matched with errors.Is/As through the Error wrapper defined below.
var (
	// ErrAuthenticationRequired indicates the call carried no authenticated caller.
	ErrAuthenticationRequired = NewKind("AUTHENTICATION_REQUIRED")
	// ErrUnauthorized indicates the authenticated caller is not an administrator.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrInvalidArgument indicates a required input is missing or malformed.
	ErrInvalidArgument = NewKind("INVALID_ARGUMENT")
	// ErrIdentityProvider indicates identity deletion failed for a reason other
	// than the identity being absent.
	ErrIdentityProvider = NewKind("IDENTITY_PROVIDER_ERROR")
	// ErrDeletionFailed indicates a store-level deletion failed mid-cascade.
	ErrDeletionFailed = NewKind("DELETION_FAILED")
	// ErrMailConfigMissing indicates mail credentials were unavailable at send
	// time. It is logged and swallowed, never surfaced to callers.
	ErrMailConfigMissing = NewKind("MAIL_CONFIG_MISSING")
	// ErrMailSendFailure indicates the mail transport rejected or failed the send.
	ErrMailSendFailure = NewKind("MAIL_SEND_FAILURE")
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrInternal indicates an internal server error.
	ErrInternal = NewKind("INTERNAL")
)

// Error is a semantic error carrying a kind sentinel, an optional wrapped
// cause and an optional message. It fully supports errors.Is/errors.As and
// unwrapping: both the kind sentinel and the wrapped cause participate in
// matching.
//
// Error string formatting:
//   - If both msg and err are set: "<msg>: <err>"
//   - If only msg is set: "<msg>"
//   - If only err is set: "<err>"
//   - If neither is set: the kind's Error() string.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a new semantic error with the given kind and a
// human-readable message. Use Wrap when there is a concrete cause to keep.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a new semantic error with the given kind, wrapping the
// provided cause and attaching a message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped cause, enabling errors.Unwrap/Is/As traversal.
func (e *Error) Unwrap() error { return e.err }

// Is matches against either the kind sentinel or the wrapped cause chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As matches against either the kind sentinel or the wrapped cause chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the semantic kind sentinel associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }
