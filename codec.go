package tuple

import (
	"encoding"
	"encoding/json"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/authcorp/libs/go/tuple/errors"
	"github.com/authcorp/libs/go/tuple/option"
)

var (
	jsonMarshalerType = reflect.TypeFor[json.Marshaler]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
	yamlMarshalerType = reflect.TypeFor[yaml.Marshaler]()
)

// String returns "(<first>, <second>)" with absent members shown as <nil>.
func (t Tuple[U, V]) String() string {
	return "(" + t.first.String() + ", " + t.second.String() + ")"
}

// MarshalJSON encodes the tuple as a two-element array, absent members as null.
func (t Tuple[U, V]) MarshalJSON() ([]byte, error) {
	if err := t.checkPortable(); err != nil {
		return nil, err
	}
	return json.Marshal(t.members())
}

// UnmarshalJSON decodes an array of at most two elements. Missing elements
// and nulls become absent members.
func (t *Tuple[U, V]) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) > 2 {
		return errors.New(errors.ErrCodeOutOfRange, "tuple array holds more than two elements").
			WithDetail("len", len(raw))
	}

	first, err := decodeJSONMember[U](raw, 0)
	if err != nil {
		return err
	}
	second, err := decodeJSONMember[V](raw, 1)
	if err != nil {
		return err
	}
	*t = New(first, second)
	return nil
}

// MarshalYAML encodes the tuple as a two-element sequence.
func (t Tuple[U, V]) MarshalYAML() (any, error) {
	if err := t.checkPortable(); err != nil {
		return nil, err
	}
	return t.members(), nil
}

// UnmarshalYAML decodes a sequence of at most two elements.
func (t *Tuple[U, V]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return errors.New(errors.ErrCodeIncompatible, "tuple must be a YAML sequence").
			WithDetail("line", node.Line)
	}
	if len(node.Content) > 2 {
		return errors.New(errors.ErrCodeOutOfRange, "tuple sequence holds more than two elements").
			WithDetail("len", len(node.Content))
	}

	first, err := decodeYAMLMember[U](node.Content, 0)
	if err != nil {
		return err
	}
	second, err := decodeYAMLMember[V](node.Content, 1)
	if err != nil {
		return err
	}
	*t = New(first, second)
	return nil
}

func (t Tuple[U, V]) members() []any {
	out := make([]any, 2)
	if v, ok := t.first.Get(); ok {
		out[0] = v
	}
	if v, ok := t.second.Get(); ok {
		out[1] = v
	}
	return out
}

func (t Tuple[U, V]) checkPortable() error {
	if t.portable {
		return nil
	}
	if !portableOption(t.first) {
		return errors.NotPortable(any(t.first.OrZero()))
	}
	if !portableOption(t.second) {
		return errors.NotPortable(any(t.second.OrZero()))
	}
	return nil
}

func decodeJSONMember[T any](raw []json.RawMessage, i int) (option.Option[T], error) {
	if i >= len(raw) || string(raw[i]) == "null" {
		return option.None[T](), nil
	}
	var v T
	if err := json.Unmarshal(raw[i], &v); err != nil {
		return option.None[T](), err
	}
	return option.Some(v), nil
}

func decodeYAMLMember[T any](nodes []*yaml.Node, i int) (option.Option[T], error) {
	if i >= len(nodes) || nodes[i].ShortTag() == "!!null" {
		return option.None[T](), nil
	}
	var v T
	if err := nodes[i].Decode(&v); err != nil {
		return option.None[T](), err
	}
	return option.Some(v), nil
}

func portableOption[T any](o option.Option[T]) bool {
	v, ok := o.Get()
	if !ok {
		return true
	}
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	return portableType(rv.Type(), map[reflect.Type]bool{})
}

// portableType reports whether values of t can be encoded. Interface types
// are accepted; their dynamic values are checked when encoded.
func portableType(t reflect.Type, seen map[reflect.Type]bool) bool {
	if done, ok := seen[t]; ok {
		return done
	}
	if t.Implements(jsonMarshalerType) || t.Implements(textMarshalerType) || t.Implements(yamlMarshalerType) {
		return true
	}
	seen[t] = true

	ok := true
	switch t.Kind() {
	case reflect.Func, reflect.Chan, reflect.Complex64, reflect.Complex128, reflect.UnsafePointer:
		ok = false
	case reflect.Pointer, reflect.Slice, reflect.Array:
		ok = portableType(t.Elem(), seen)
	case reflect.Map:
		ok = portableType(t.Key(), seen) && portableType(t.Elem(), seen)
	case reflect.Struct:
		for i := 0; i < t.NumField() && ok; i++ {
			if f := t.Field(i); f.IsExported() {
				ok = portableType(f.Type, seen)
			}
		}
	}
	seen[t] = ok
	return ok
}
