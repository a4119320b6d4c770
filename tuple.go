package tuple

import (
	"iter"

	"github.com/authcorp/libs/go/tuple/option"
)

// Tuple is an immutable ordered pair of two possibly absent values.
//
// The zero value is a tuple with both members absent.
type Tuple[U, V any] struct {
	first    option.Option[U]
	second   option.Option[V]
	partial  bool
	portable bool
}

// Of returns a tuple holding both values.
func Of[U, V any](first U, second V) Tuple[U, V] {
	return New(option.Some(first), option.Some(second))
}

// New returns a tuple with explicit member presence.
func New[U, V any](first option.Option[U], second option.Option[V]) Tuple[U, V] {
	return Tuple[U, V]{
		first:    first,
		second:   second,
		portable: portableOption(first) && portableOption(second),
	}
}

// Empty returns a tuple with both members absent.
func Empty[U, V any]() Tuple[U, V] {
	return New(option.None[U](), option.None[V]())
}

// OfSlice returns a tuple of the first two items. Missing items are absent
// and items beyond the second are ignored.
func OfSlice[S any](items []S) Tuple[S, S] {
	switch len(items) {
	case 0:
		return Empty[S, S]()
	case 1:
		return New(option.Some(items[0]), option.None[S]())
	default:
		return Of(items[0], items[1])
	}
}

// OfSeq returns a tuple of the first two values produced by seq. Values
// beyond the second are not pulled.
func OfSeq[S any](seq iter.Seq[S]) Tuple[S, S] {
	if seq == nil {
		return Empty[S, S]()
	}
	next, stop := iter.Pull(seq)
	defer stop()

	first, ok := next()
	if !ok {
		return Empty[S, S]()
	}
	second, ok := next()
	return New(option.Some(first), option.Of(second, ok))
}

// OfEntry returns a tuple of the entry's key and value.
func OfEntry[K, V any](e *Entry[K, V]) Tuple[K, V] {
	if e == nil {
		return Empty[K, V]()
	}
	return New(e.key, e.value)
}

// partial starts a pair whose second member is not known yet.
func partial[S any](item S) Tuple[S, S] {
	t := New(option.Some(item), option.None[S]())
	t.partial = true
	return t
}

// First returns the first member.
func (t Tuple[U, V]) First() option.Option[U] {
	return t.first
}

// Second returns the second member.
func (t Tuple[U, V]) Second() option.Option[V] {
	return t.second
}

// Unpack returns both members, zero values standing in for absent ones.
func (t Tuple[U, V]) Unpack() (U, V) {
	return t.first.OrZero(), t.second.OrZero()
}

// IsPartial reports whether the tuple was left unfinished by the pairing
// engine, i.e. its input had an odd number of elements.
func (t Tuple[U, V]) IsPartial() bool {
	return t.partial
}

// IsPortable reports whether both members can be encoded by MarshalJSON
// and MarshalYAML.
func (t Tuple[U, V]) IsPortable() bool {
	return t.checkPortable() == nil
}

// WithFirst returns a copy with the first member replaced.
func (t Tuple[U, V]) WithFirst(value U) Tuple[U, V] {
	return New(option.Some(value), t.second)
}

// WithSecond returns a copy with the second member replaced.
func (t Tuple[U, V]) WithSecond(value V) Tuple[U, V] {
	return New(t.first, option.Some(value))
}

// WithFirstOption returns a copy with the first member replaced, possibly by absence.
func (t Tuple[U, V]) WithFirstOption(value option.Option[U]) Tuple[U, V] {
	return New(value, t.second)
}

// WithSecondOption returns a copy with the second member replaced, possibly by absence.
func (t Tuple[U, V]) WithSecondOption(value option.Option[V]) Tuple[U, V] {
	return New(t.first, value)
}

// Swapped returns a tuple with the members exchanged.
func (t Tuple[U, V]) Swapped() Tuple[V, U] {
	return Tuple[V, U]{first: t.second, second: t.first, portable: t.portable}
}

// Reverse is an alias for Swapped.
func (t Tuple[U, V]) Reverse() Tuple[V, U] {
	return t.Swapped()
}
