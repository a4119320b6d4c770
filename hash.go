package tuple

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"

	"github.com/authcorp/libs/go/tuple/option"
)

// maxHashDepth bounds the walk over self-referencing values.
const maxHashDepth = 32

// Equal reports whether both tuples hold deeply equal members. Absent
// members are equal to each other only. Whether a tuple is partial does not
// take part in the comparison.
func (t Tuple[U, V]) Equal(other Tuple[U, V]) bool {
	return reflect.DeepEqual(t.first, other.first) && reflect.DeepEqual(t.second, other.second)
}

// Hash returns a digest of both members. Tuples that are Equal have the
// same hash.
func (t Tuple[U, V]) Hash() uint64 {
	d := xxhash.New()
	hashOption(d, t.first)
	hashOption(d, t.second)
	return d.Sum64()
}

func hashOption[T any](d *xxhash.Digest, o option.Option[T]) {
	v, ok := o.Get()
	if !ok {
		d.Write([]byte{0})
		return
	}
	d.Write([]byte{1})
	hashValue(d, reflect.ValueOf(&v).Elem(), 0)
}

// hashValue mirrors reflect.DeepEqual: pointers hash their target, maps hash
// their entries independent of iteration order, and funcs only distinguish
// nil from non-nil.
func hashValue(d *xxhash.Digest, v reflect.Value, depth int) {
	if depth > maxHashDepth {
		return
	}
	var buf [8]byte
	writeUint := func(n uint64) {
		binary.LittleEndian.PutUint64(buf[:], n)
		d.Write(buf[:])
	}

	if !v.IsValid() {
		d.Write([]byte{0})
		return
	}
	d.Write([]byte{byte(v.Kind())})

	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			writeUint(1)
		} else {
			writeUint(0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		writeUint(uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		writeUint(v.Uint())
	case reflect.Float32, reflect.Float64:
		writeUint(floatBits(v.Float()))
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		writeUint(floatBits(real(c)))
		writeUint(floatBits(imag(c)))
	case reflect.String:
		d.WriteString(v.String())
	case reflect.Slice, reflect.Array:
		writeUint(uint64(v.Len()))
		for i := 0; i < v.Len(); i++ {
			hashValue(d, v.Index(i), depth+1)
		}
	case reflect.Map:
		writeUint(uint64(v.Len()))
		var sum uint64
		it := v.MapRange()
		for it.Next() {
			entry := xxhash.New()
			hashValue(entry, it.Key(), depth+1)
			hashValue(entry, it.Value(), depth+1)
			sum += entry.Sum64()
		}
		writeUint(sum)
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			writeUint(0)
			return
		}
		if v.Kind() == reflect.Interface {
			d.WriteString(v.Elem().Type().String())
		}
		hashValue(d, v.Elem(), depth+1)
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			hashValue(d, v.Field(i), depth+1)
		}
	case reflect.Func:
		if v.IsNil() {
			writeUint(0)
		} else {
			writeUint(1)
		}
	case reflect.Chan, reflect.UnsafePointer:
		writeUint(uint64(v.Pointer()))
	}
}

// floatBits folds -0 onto +0, which DeepEqual treats as equal.
func floatBits(f float64) uint64 {
	if f == 0 {
		return 0
	}
	return math.Float64bits(f)
}
