package tuple

import (
	"iter"
	"reflect"

	"github.com/authcorp/libs/go/tuple/errors"
	"github.com/authcorp/libs/go/tuple/option"
)

const listSize = 2

// Entry is a mutable key/value pair.
type Entry[K, V any] struct {
	key   option.Option[K]
	value option.Option[V]
}

// NewEntry returns an entry holding key and value.
func NewEntry[K, V any](key K, value V) *Entry[K, V] {
	return &Entry[K, V]{key: option.Some(key), value: option.Some(value)}
}

// Key returns the entry key.
func (e *Entry[K, V]) Key() option.Option[K] {
	return e.key
}

// Value returns the entry value.
func (e *Entry[K, V]) Value() option.Option[V] {
	return e.value
}

// SetValue replaces the value and returns the previous one.
func (e *Entry[K, V]) SetValue(value V) option.Option[V] {
	return e.SetValueOption(option.Some(value))
}

// SetValueOption replaces the value, possibly with absence, and returns the previous one.
func (e *Entry[K, V]) SetValueOption(value option.Option[V]) option.Option[V] {
	prev := e.value
	e.value = value
	return prev
}

// ToMapEntry returns a new entry of the tuple members. Changing the entry
// does not affect the tuple.
func (t Tuple[U, V]) ToMapEntry() *Entry[U, V] {
	return &Entry[U, V]{key: t.first, value: t.second}
}

// SingleEntryMap is a read-only map holding exactly one entry. Keys are
// matched with reflect.DeepEqual, so any key type is allowed.
type SingleEntryMap[K, V any] struct {
	key   option.Option[K]
	value option.Option[V]
}

// ToMap returns a read-only one-entry map of first to second.
func (t Tuple[U, V]) ToMap() SingleEntryMap[U, V] {
	return SingleEntryMap[U, V]{key: t.first, value: t.second}
}

// Len always returns 1.
func (m SingleEntryMap[K, V]) Len() int {
	return 1
}

// Get returns the value stored under key.
func (m SingleEntryMap[K, V]) Get(key option.Option[K]) (option.Option[V], bool) {
	if !m.ContainsKey(key) {
		return option.None[V](), false
	}
	return m.value, true
}

// ContainsKey reports whether key is the map's only key.
func (m SingleEntryMap[K, V]) ContainsKey(key option.Option[K]) bool {
	return reflect.DeepEqual(m.key, key)
}

// All yields the single entry.
func (m SingleEntryMap[K, V]) All() iter.Seq2[option.Option[K], option.Option[V]] {
	return func(yield func(option.Option[K], option.Option[V]) bool) {
		yield(m.key, m.value)
	}
}

// String formats the map like a Go map.
func (m SingleEntryMap[K, V]) String() string {
	return "map[" + m.key.String() + ":" + m.value.String() + "]"
}

// List is a read-only two-element list.
type List[T any] struct {
	items [listSize]option.Option[T]
}

// ToList returns both members as a list of any.
func (t Tuple[U, V]) ToList() List[any] {
	return List[any]{items: [listSize]option.Option[any]{
		option.Map(t.first, func(u U) any { return u }),
		option.Map(t.second, func(v V) any { return v }),
	}}
}

// ToTypedList returns both members as a list of T. It fails with
// errors.ErrIncompatible when a present member is not a T, or when both
// members hold non-nil values and neither dynamic type is assignable to the
// other. An absent or nil member never causes a failure on its own.
func ToTypedList[T, U, V any](t Tuple[U, V]) (List[T], error) {
	if err := checkMutual(t.first, t.second); err != nil {
		return List[T]{}, err
	}
	first, err := castOption[T](t.first)
	if err != nil {
		return List[T]{}, err
	}
	second, err := castOption[T](t.second)
	if err != nil {
		return List[T]{}, err
	}
	return List[T]{items: [listSize]option.Option[T]{first, second}}, nil
}

// Len always returns 2.
func (l List[T]) Len() int {
	return listSize
}

// At returns the element at index 0 or 1.
func (l List[T]) At(index int) (option.Option[T], error) {
	if index < 0 || index >= listSize {
		return option.None[T](), errors.OutOfRange(index, listSize)
	}
	return l.items[index], nil
}

// MustAt is At for indexes known to be valid. It panics otherwise.
func (l List[T]) MustAt(index int) option.Option[T] {
	return errors.Must(l.At(index))
}

// All yields both elements with their index.
func (l List[T]) All() iter.Seq2[int, option.Option[T]] {
	return func(yield func(int, option.Option[T]) bool) {
		for i, item := range l.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Values returns a copy of both elements.
func (l List[T]) Values() []option.Option[T] {
	return []option.Option[T]{l.items[0], l.items[1]}
}

// String formats the list like a Go slice.
func (l List[T]) String() string {
	return "[" + l.items[0].String() + " " + l.items[1].String() + "]"
}

func castOption[T, S any](o option.Option[S]) (option.Option[T], error) {
	v, ok := o.Get()
	if !ok {
		return option.None[T](), nil
	}
	if tv, ok := any(v).(T); ok {
		return option.Some(tv), nil
	}
	want := reflect.TypeFor[T]()
	if any(v) == nil && nillable(want) {
		var zero T
		return option.Some(zero), nil
	}
	return option.None[T](), errors.Incompatible(any(v), want)
}

func checkMutual[U, V any](first option.Option[U], second option.Option[V]) error {
	a, b := dynamicType(first), dynamicType(second)
	if a == nil || b == nil || a.AssignableTo(b) || b.AssignableTo(a) {
		return nil
	}
	return errors.Incompatible(any(first.OrZero()), b)
}

// dynamicType returns nil for absent members and nil interfaces.
func dynamicType[T any](o option.Option[T]) reflect.Type {
	v, ok := o.Get()
	if !ok {
		return nil
	}
	return reflect.TypeOf(any(v))
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}
