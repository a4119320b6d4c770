// Package errors provides the typed errors returned by the tuple library.
// Every error carries an ErrorCode; errors.Is matches on the code, so callers
// can test against the sentinels regardless of message or details.
package errors

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// AsType is a generic error type assertion.
// Returns the error as type T and true if the error chain contains type T.
func AsType[T error](err error) (T, bool) {
	var target T
	if errors.As(err, &target) {
		return target, true
	}
	return target, false
}

// Must panics if err is not nil, otherwise returns value.
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}

// ErrorCode represents tuple error categories.
type ErrorCode string

const (
	// ErrCodeConflict is a duplicate key while building a unique mapping.
	ErrCodeConflict ErrorCode = "CONFLICT"
	// ErrCodeIncompatible is a member that does not fit the requested element type.
	ErrCodeIncompatible ErrorCode = "INCOMPATIBLE"
	// ErrCodeOutOfRange is an index outside a fixed-size view.
	ErrCodeOutOfRange ErrorCode = "OUT_OF_RANGE"
	// ErrCodeNotComparable is an ordering request over unorderable members.
	ErrCodeNotComparable ErrorCode = "NOT_COMPARABLE"
	// ErrCodeNilArgument is a required argument or element that was nil.
	ErrCodeNilArgument ErrorCode = "NIL_ARGUMENT"
	// ErrCodeNotPortable is an encode request for a tuple holding unencodable members.
	ErrCodeNotPortable ErrorCode = "NOT_PORTABLE"
	// ErrCodeUnhashable is a map key whose dynamic value cannot be hashed.
	ErrCodeUnhashable ErrorCode = "UNHASHABLE"
)

// Sentinels for errors.Is. They match any *Error with the same code.
var (
	ErrConflict      = &Error{Code: ErrCodeConflict}
	ErrIncompatible  = &Error{Code: ErrCodeIncompatible}
	ErrOutOfRange    = &Error{Code: ErrCodeOutOfRange}
	ErrNotComparable = &Error{Code: ErrCodeNotComparable}
	ErrNilArgument   = &Error{Code: ErrCodeNilArgument}
	ErrNotPortable   = &Error{Code: ErrCodeNotPortable}
	ErrUnhashable    = &Error{Code: ErrCodeUnhashable}
)

// Error is the library error type.
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]any
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", e.Code, e.Message)
	if len(e.Details) > 0 {
		keys := slices.Sorted(maps.Keys(e.Details))
		b.WriteString(" (")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", k, e.Details[k])
		}
		b.WriteString(")")
	}
	if e.cause != nil {
		fmt.Fprintf(&b, ": %v", e.cause)
	}
	return b.String()
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// WithCause sets the underlying cause.
func (e *Error) WithCause(cause error) *Error {
	e.cause = cause
	return e
}

// WithDetail adds a detail to the error.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// CodeOf returns the code of the first *Error in err's chain, or "".
func CodeOf(err error) ErrorCode {
	if e, ok := AsType[*Error](err); ok {
		return e.Code
	}
	return ""
}
