// Package testutil provides rapid generators for options and tuples.
package testutil

import (
	"github.com/authcorp/libs/go/tuple"
	"github.com/authcorp/libs/go/tuple/option"
	"pgregory.net/rapid"
)

// OptionGen generates Option[T] values, None about half of the time.
func OptionGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[option.Option[T]] {
	return rapid.Custom(func(t *rapid.T) option.Option[T] {
		if rapid.Bool().Draw(t, "isSome") {
			return option.Some(valueGen.Draw(t, "value"))
		}
		return option.None[T]()
	})
}

// SomeGen generates Some[T] values only.
func SomeGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[option.Option[T]] {
	return rapid.Custom(func(t *rapid.T) option.Option[T] {
		return option.Some(valueGen.Draw(t, "value"))
	})
}

// TupleGen generates tuples whose members may be absent.
func TupleGen[U, V any](firstGen *rapid.Generator[U], secondGen *rapid.Generator[V]) *rapid.Generator[tuple.Tuple[U, V]] {
	return rapid.Custom(func(t *rapid.T) tuple.Tuple[U, V] {
		return tuple.New(
			OptionGen(firstGen).Draw(t, "first"),
			OptionGen(secondGen).Draw(t, "second"),
		)
	})
}

// FullTupleGen generates tuples with both members present.
func FullTupleGen[U, V any](firstGen *rapid.Generator[U], secondGen *rapid.Generator[V]) *rapid.Generator[tuple.Tuple[U, V]] {
	return rapid.Custom(func(t *rapid.T) tuple.Tuple[U, V] {
		return tuple.Of(firstGen.Draw(t, "first"), secondGen.Draw(t, "second"))
	})
}

// SmallKeyGen generates keys from a small alphabet so that duplicates are common.
func SmallKeyGen() *rapid.Generator[string] {
	return rapid.SampledFrom([]string{"foo", "bar", "baz", "qux"})
}
