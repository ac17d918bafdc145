// Package apperr carries the error classification shared by services and
// handlers: every failure a service surfaces is either NotFound,
// InvalidOperation or PermissionDenied, and handlers map those to HTTP status
// codes without inspecting message strings.
package apperr

import "errors"

type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalidOperation
	KindPermissionDenied
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func InvalidOperation(msg string) *Error {
	return &Error{Kind: KindInvalidOperation, Message: msg}
}

func PermissionDenied(msg string) *Error {
	return &Error{Kind: KindPermissionDenied, Message: msg}
}

// Wrap attaches a cause while keeping the classification and message.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// KindOf extracts the classification from an error chain.
// Unclassified errors report KindUnknown and map to HTTP 500.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func IsInvalidOperation(err error) bool {
	return KindOf(err) == KindInvalidOperation
}

func IsPermissionDenied(err error) bool {
	return KindOf(err) == KindPermissionDenied
}
