package tuple

import (
	"iter"
	"math"
	"reflect"
	"slices"

	"github.com/authcorp/libs/go/tuple/errors"
	"github.com/authcorp/libs/go/tuple/option"
)

// Mapping maps first members to second members. The absent key is a key
// like any other.
type Mapping[K comparable, V any] map[option.Option[K]]option.Option[V]

// Get returns the value stored under a present key.
func (m Mapping[K, V]) Get(key K) (option.Option[V], bool) {
	return m.Lookup(option.Some(key))
}

// Lookup returns the value stored under key, which may be absent.
func (m Mapping[K, V]) Lookup(key option.Option[K]) (option.Option[V], bool) {
	v, ok := m[key]
	return v, ok
}

// Tuples returns one tuple per entry, in no particular order.
func (m Mapping[K, V]) Tuples() []Tuple[K, V] {
	tuples := make([]Tuple[K, V], 0, len(m))
	for k, v := range m {
		tuples = append(tuples, New(k, v))
	}
	return tuples
}

// Groups maps first members to every second member seen with them.
type Groups[K comparable, V any] map[option.Option[K]][]option.Option[V]

// Get returns the values grouped under a present key.
func (g Groups[K, V]) Get(key K) []option.Option[V] {
	return g[option.Some(key)]
}

// Lookup returns the values grouped under key, which may be absent.
func (g Groups[K, V]) Lookup(key option.Option[K]) []option.Option[V] {
	return g[key]
}

// Map folds tuples into a Mapping of first to second member. Two tuples
// with equal first members, both absent included, fail the whole call with
// errors.ErrConflict. Float NaN keys are equal to each other here, unlike
// with ==. A key whose dynamic value cannot be hashed, such as a slice held
// in an any, fails with errors.ErrUnhashable.
func Map[K comparable, V any](tuples ...Tuple[K, V]) (Mapping[K, V], error) {
	return MapSeq(slices.Values(tuples))
}

// MapSeq is Map over a sequence.
func MapSeq[K comparable, V any](seq iter.Seq[Tuple[K, V]]) (Mapping[K, V], error) {
	return Collect(seq, MapCollector[K, V]())
}

// MapAll groups the second members of tuples by first member. Values keep
// their input order within a group, duplicates and absent values included.
// Unhashable keys fail as in Map. A Go map cannot look up a NaN key, so
// every NaN key forms a group of its own.
func MapAll[K comparable, V any](tuples ...Tuple[K, V]) (Groups[K, V], error) {
	return MapAllSeq(slices.Values(tuples))
}

// MapAllSeq is MapAll over a sequence.
func MapAllSeq[K comparable, V any](seq iter.Seq[Tuple[K, V]]) (Groups[K, V], error) {
	return Collect(seq, MapAllCollector[K, V]())
}

// MapCollector returns Map as a Collector. Combining two partitions that
// share a key fails with errors.ErrConflict.
func MapCollector[K comparable, V any]() Collector[Tuple[K, V], Mapping[K, V], Mapping[K, V]] {
	return Collector[Tuple[K, V], Mapping[K, V], Mapping[K, V]]{
		Supply: func() Mapping[K, V] {
			return make(Mapping[K, V])
		},
		Accumulate: func(acc Mapping[K, V], t Tuple[K, V]) (Mapping[K, V], error) {
			if err := checkKey(t.first); err != nil {
				return nil, err
			}
			if acc.contains(t.first) {
				return nil, errors.Conflict(t.first)
			}
			acc[t.first] = t.second
			return acc, nil
		},
		Combine: func(left, right Mapping[K, V]) (Mapping[K, V], error) {
			for k, v := range right {
				if left.contains(k) {
					return nil, errors.Conflict(k)
				}
				left[k] = v
			}
			return left, nil
		},
		Finish: func(acc Mapping[K, V]) Mapping[K, V] {
			return acc
		},
	}
}

// MapAllCollector returns MapAll as a Collector.
func MapAllCollector[K comparable, V any]() Collector[Tuple[K, V], Groups[K, V], Groups[K, V]] {
	return Collector[Tuple[K, V], Groups[K, V], Groups[K, V]]{
		Supply: func() Groups[K, V] {
			return make(Groups[K, V])
		},
		Accumulate: func(acc Groups[K, V], t Tuple[K, V]) (Groups[K, V], error) {
			if err := checkKey(t.first); err != nil {
				return nil, err
			}
			acc[t.first] = append(acc[t.first], t.second)
			return acc, nil
		},
		Combine: func(left, right Groups[K, V]) (Groups[K, V], error) {
			for k, values := range right {
				left[k] = append(left[k], values...)
			}
			return left, nil
		},
		Finish: func(acc Groups[K, V]) Groups[K, V] {
			return acc
		},
	}
}

func (m Mapping[K, V]) contains(key option.Option[K]) bool {
	if _, ok := m[key]; ok {
		return true
	}
	if !isNaNKey(key) {
		return false
	}
	for k := range m {
		if isNaNKey(k) {
			return true
		}
	}
	return false
}

// checkKey rejects keys that would panic when used as a map key.
func checkKey[K comparable](key option.Option[K]) error {
	v, ok := key.Get()
	if !ok {
		return nil
	}
	rv := reflect.ValueOf(any(v))
	if rv.IsValid() && !rv.Comparable() {
		return errors.Unhashable(any(v))
	}
	return nil
}

func isNaNKey[K comparable](key option.Option[K]) bool {
	v, ok := key.Get()
	if !ok {
		return false
	}
	rv := reflect.ValueOf(any(v))
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	}
	return false
}
