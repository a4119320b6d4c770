package tuple

import (
	"iter"
	"reflect"

	"github.com/authcorp/libs/go/tuple/option"
)

// FromMap returns one tuple per map entry, in no particular order.
func FromMap[K comparable, V any](m map[K]V) []Tuple[K, V] {
	tuples := make([]Tuple[K, V], 0, len(m))
	for k, v := range m {
		tuples = append(tuples, Of(k, v))
	}
	return tuples
}

// FromSeq2 returns one tuple per key/value pair, in sequence order.
func FromSeq2[K, V any](seq iter.Seq2[K, V]) []Tuple[K, V] {
	var tuples []Tuple[K, V]
	if seq == nil {
		return tuples
	}
	for k, v := range seq {
		tuples = append(tuples, Of(k, v))
	}
	return tuples
}

// All yields the tuples as key/value pairs. Absent members are passed as
// their Option.
func All[U, V any](tuples ...Tuple[U, V]) iter.Seq2[option.Option[U], option.Option[V]] {
	return func(yield func(option.Option[U], option.Option[V]) bool) {
		for _, t := range tuples {
			if !yield(t.first, t.second) {
				return
			}
		}
	}
}

// ChanSeq adapts a channel to a sequence. The channel can be drained only
// once, so the sequence can be ranged over only once.
func ChanSeq[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range ch {
			if !yield(v) {
				return
			}
		}
	}
}

// SkipNil drops nil elements (nil pointers, interfaces, maps, slices, funcs
// and channels) from seq.
func SkipNil[T any](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if seq == nil {
			return
		}
		for v := range seq {
			if isNil(v) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

func isNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
