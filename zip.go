package tuple

import (
	"iter"

	"github.com/authcorp/libs/go/tuple/errors"
	"github.com/authcorp/libs/go/tuple/option"
)

// Zip pairs the i-th items of first and second. The result is as long as
// the longer slice; positions past the end of the shorter one hold an
// absent member.
func Zip[U, V any](first []U, second []V) []Tuple[U, V] {
	n := max(len(first), len(second))
	tuples := make([]Tuple[U, V], n)
	for i := range n {
		tuples[i] = New(at(first, i), at(second, i))
	}
	return tuples
}

// ZipTuple zips the two slices held by t. Both members must be present.
func ZipTuple[U, V any](t Tuple[[]U, []V]) ([]Tuple[U, V], error) {
	first, ok := t.first.Get()
	if !ok {
		return nil, errors.NilArgument("first items")
	}
	second, ok := t.second.Get()
	if !ok {
		return nil, errors.NilArgument("second items")
	}
	return Zip(first, second), nil
}

// ZipSeq is Zip over two sequences, which are consumed once each.
func ZipSeq[U, V any](first iter.Seq[U], second iter.Seq[V]) ([]Tuple[U, V], error) {
	z, err := NewZipper(first, second)
	if err != nil {
		return nil, err
	}
	defer z.Stop()

	var tuples []Tuple[U, V]
	for t, ok := z.Next(); ok; t, ok = z.Next() {
		tuples = append(tuples, t)
	}
	return tuples, nil
}

// Zipper is a forward-only cursor zipping two sequences. It pulls one value
// from each sequence per step and stops once both are exhausted.
//
// Callers that abandon a Zipper before exhaustion must call Stop.
type Zipper[U, V any] struct {
	nextFirst  func() (U, bool)
	stopFirst  func()
	nextSecond func() (V, bool)
	stopSecond func()
	firstDone  bool
	secondDone bool
}

// NewZipper returns a cursor over first and second. Both sequences are
// required.
func NewZipper[U, V any](first iter.Seq[U], second iter.Seq[V]) (*Zipper[U, V], error) {
	if first == nil {
		return nil, errors.NilArgument("first items")
	}
	if second == nil {
		return nil, errors.NilArgument("second items")
	}
	z := &Zipper[U, V]{}
	z.nextFirst, z.stopFirst = iter.Pull(first)
	z.nextSecond, z.stopSecond = iter.Pull(second)
	return z, nil
}

// Next returns the next tuple, or false once both sequences are exhausted.
func (z *Zipper[U, V]) Next() (Tuple[U, V], bool) {
	first := pull(z.nextFirst, &z.firstDone)
	second := pull(z.nextSecond, &z.secondDone)
	if z.firstDone && z.secondDone {
		z.Stop()
		return Tuple[U, V]{}, false
	}
	return New(first, second), true
}

// All yields the remaining tuples and stops the cursor afterwards.
func (z *Zipper[U, V]) All() iter.Seq[Tuple[U, V]] {
	return func(yield func(Tuple[U, V]) bool) {
		defer z.Stop()
		for t, ok := z.Next(); ok; t, ok = z.Next() {
			if !yield(t) {
				return
			}
		}
	}
}

// Stop releases both sequences. It is safe to call more than once.
func (z *Zipper[U, V]) Stop() {
	z.stopFirst()
	z.stopSecond()
	z.firstDone, z.secondDone = true, true
}

func pull[T any](next func() (T, bool), done *bool) option.Option[T] {
	if *done {
		return option.None[T]()
	}
	v, ok := next()
	if !ok {
		*done = true
	}
	return option.Of(v, ok)
}

func at[T any](items []T, i int) option.Option[T] {
	if i < len(items) {
		return option.Some(items[i])
	}
	return option.None[T]()
}
