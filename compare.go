package tuple

import (
	"cmp"
	"reflect"
	"slices"

	"github.com/authcorp/libs/go/tuple/errors"
	"github.com/authcorp/libs/go/tuple/option"
)

// Comparer is implemented by member types that define their own order.
type Comparer[T any] interface {
	Compare(other T) int
}

var intType = reflect.TypeFor[int]()

// CompareTo orders t against other, first member first. An absent member
// sorts before a present one, and a nil other sorts before any tuple.
//
// Present members are ordered through a Compare method or, for bool,
// integer, float and string kinds of identical dynamic type, by value.
// Anything else fails with errors.ErrNotComparable.
func (t Tuple[U, V]) CompareTo(other *Tuple[U, V]) (int, error) {
	if other == nil {
		return 1, nil
	}
	c, err := compareOptions(t.first, other.first)
	if err != nil || c != 0 {
		return c, err
	}
	return compareOptions(t.second, other.second)
}

// Compare is CompareTo in two-argument form.
func Compare[U, V any](a, b Tuple[U, V]) (int, error) {
	return a.CompareTo(&b)
}

// CompareOrdered orders tuples of ordered member types without the
// possibility of failure.
func CompareOrdered[U, V cmp.Ordered](a, b Tuple[U, V]) int {
	if c := compareOrderedOption(a.first, b.first); c != 0 {
		return c
	}
	return compareOrderedOption(a.second, b.second)
}

// Sort sorts tuples in ascending order. The sort is stable. When two members
// cannot be ordered the slice is left untouched and the error is returned.
func Sort[U, V any](tuples []Tuple[U, V]) error {
	var err error
	sorted := slices.Clone(tuples)
	slices.SortStableFunc(sorted, func(a, b Tuple[U, V]) int {
		if err != nil {
			return 0
		}
		c, cerr := a.CompareTo(&b)
		if cerr != nil {
			err = cerr
			return 0
		}
		return c
	})
	if err != nil {
		return err
	}
	copy(tuples, sorted)
	return nil
}

func compareOrderedOption[T cmp.Ordered](a, b option.Option[T]) int {
	av, aok := a.Get()
	bv, bok := b.Get()
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return 1
	}
	return cmp.Compare(av, bv)
}

func compareOptions[T any](a, b option.Option[T]) (int, error) {
	av, aok := a.Get()
	bv, bok := b.Get()
	switch {
	case !aok && !bok:
		return 0, nil
	case !aok:
		return -1, nil
	case !bok:
		return 1, nil
	}
	return compareValues(av, bv)
}

func compareValues[T any](a, b T) (int, error) {
	if c, ok := any(a).(Comparer[T]); ok {
		return c.Compare(b), nil
	}

	ra, rb := reflect.ValueOf(any(a)), reflect.ValueOf(any(b))
	if !ra.IsValid() || !rb.IsValid() || ra.Type() != rb.Type() {
		return 0, errors.NotComparable(any(a), any(b))
	}

	// Members typed as an interface may still carry a self-comparing value,
	// e.g. time.Time inside an any.
	if m := ra.MethodByName("Compare"); m.IsValid() {
		mt := m.Type()
		if mt.NumIn() == 1 && mt.In(0) == ra.Type() && mt.NumOut() == 1 && mt.Out(0) == intType {
			return int(m.Call([]reflect.Value{rb})[0].Int()), nil
		}
	}

	switch ra.Kind() {
	case reflect.Bool:
		x, y := ra.Bool(), rb.Bool()
		switch {
		case x == y:
			return 0, nil
		case !x:
			return -1, nil
		default:
			return 1, nil
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(ra.Int(), rb.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(ra.Uint(), rb.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(ra.Float(), rb.Float()), nil
	case reflect.String:
		return cmp.Compare(ra.String(), rb.String()), nil
	}
	return 0, errors.NotComparable(any(a), any(b))
}
