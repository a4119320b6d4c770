// Package option provides the absent-value marker used by tuples.
//
// Go generics have no universal null, so a tuple member, a zip padding slot
// or a map key that may be missing is carried as an Option. An Option is
// comparable whenever T is, which lets it serve as a Go map key, the None
// key included.
package option

import "fmt"

// Option holds a value of T or nothing. The zero Option is None.
type Option[T any] struct {
	value   T
	present bool
}

// Some returns a present Option.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Of creates an Option from the comma-ok idiom.
func Of[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// FromPointer returns None for a nil pointer and Some(*p) otherwise.
func FromPointer[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone reports whether the value is absent.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// Unwrap returns the value. It panics on None.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic("option: called Unwrap on None")
	}
	return o.value
}

// UnwrapOr returns the value, or fallback on None.
func (o Option[T]) UnwrapOr(fallback T) T {
	if !o.present {
		return fallback
	}
	return o.value
}

// UnwrapOrElse returns the value, or the result of fn on None.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if !o.present {
		return fn()
	}
	return o.value
}

// OrZero returns the contained value or the zero value of T.
func (o Option[T]) OrZero() T {
	return o.value
}

// Match calls onSome with the value, or onNone when absent.
func (o Option[T]) Match(onSome func(T), onNone func()) {
	if !o.present {
		onNone()
		return
	}
	onSome(o.value)
}

// String formats the contained value with %v, or "<nil>" when empty.
func (o Option[T]) String() string {
	if !o.present {
		return "<nil>"
	}
	return fmt.Sprintf("%v", o.value)
}

// Map transforms a present value with fn.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if o.present {
		return Some(fn(o.value))
	}
	return None[U]()
}

// FlatMap transforms a present value with fn, which may itself return None.
func FlatMap[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.present {
		return fn(o.value)
	}
	return None[U]()
}
