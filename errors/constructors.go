package errors

import (
	"fmt"
	"reflect"
)

// New creates a new Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Conflict creates a duplicate key error.
func Conflict(key any) *Error {
	return New(ErrCodeConflict, "duplicate key").WithDetail("key", key)
}

// Incompatible creates an error for a value that is not of the wanted type.
func Incompatible(value any, want reflect.Type) *Error {
	return New(ErrCodeIncompatible, "tuple members do not share a mutually-compatible type").
		WithDetail("type", typeName(value)).
		WithDetail("want", want.String())
}

// OutOfRange creates an index error for a view of the given size.
func OutOfRange(index, size int) *Error {
	return New(ErrCodeOutOfRange, fmt.Sprintf("%d is outside range of 0 to %d exclusive", index, size))
}

// NotComparable creates an ordering error for two values.
func NotComparable(a, b any) *Error {
	return New(ErrCodeNotComparable, "values are not mutually comparable").
		WithDetail("left", typeName(a)).
		WithDetail("right", typeName(b))
}

// NilArgument creates an error for a required argument that was nil.
func NilArgument(name string) *Error {
	return New(ErrCodeNilArgument, name+" cannot be nil")
}

// NotPortable creates an encoding error for a value of an unencodable type.
func NotPortable(value any) *Error {
	return New(ErrCodeNotPortable, "tuple holds a member that cannot be encoded").
		WithDetail("type", typeName(value))
}

// Unhashable creates an error for a map key that cannot be hashed.
func Unhashable(key any) *Error {
	return New(ErrCodeUnhashable, "key cannot be used in a map").
		WithDetail("type", typeName(key))
}

// Wrap wraps an error with additional context, preserving the code of an *Error.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	if e, ok := AsType[*Error](err); ok {
		return &Error{Code: e.Code, Message: message, Details: e.Details, cause: err}
	}
	return New("", message).WithCause(err)
}

func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}
