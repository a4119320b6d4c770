package tuple_test

import (
	"encoding/json"
	"testing"

	"github.com/authcorp/libs/go/tuple"
	"github.com/authcorp/libs/go/tuple/errors"
	"github.com/authcorp/libs/go/tuple/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type withHiddenFunc struct {
	Name string
	hook func()
}

func TestString(t *testing.T) {
	var nilPtr *int
	tests := []struct {
		name string
		in   interface{ String() string }
		want string
	}{
		{"values", tuple.Of("a", 1), "(a, 1)"},
		{"empty", tuple.Empty[string, int](), "(<nil>, <nil>)"},
		{"absent second", tuple.New(option.Some(1.5), option.None[bool]()), "(1.5, <nil>)"},
		{"present nil", tuple.Of[*int, any](nilPtr, nil), "(<nil>, <nil>)"},
		{"nested", tuple.Of(tuple.Of(1, 2), []string{"x", "y"}), "((1, 2), [x y])"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.String())
		})
	}
}

func TestPortable(t *testing.T) {
	assert.True(t, tuple.Of("a", 1).IsPortable())
	assert.True(t, tuple.Empty[func(), chan int]().IsPortable())
	assert.True(t, tuple.Of(withHiddenFunc{Name: "x"}, map[string][]int{}).IsPortable())
	assert.True(t, tuple.Of[any, any](nil, nil).IsPortable())

	assert.False(t, tuple.Of(func() {}, 1).IsPortable())
	assert.False(t, tuple.Of(1, make(chan int)).IsPortable())
	assert.False(t, tuple.Of[any, int](complex(1, 2), 0).IsPortable())
	assert.False(t, tuple.Of(map[string]func(){}, 0).IsPortable())

	assert.False(t, tuple.Of(func() {}, 1).Swapped().IsPortable())
	assert.False(t, tuple.Of(func() {}, 1).WithFirst(nil).IsPortable())
	assert.True(t, tuple.Of(func() {}, 1).WithFirstOption(option.None[func()]()).IsPortable())
}

func TestMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"values", tuple.Of("a", 1), `["a",1]`},
		{"absent", tuple.New(option.None[string](), option.Some(2)), `[null,2]`},
		{"nested", tuple.Of(tuple.Of(1, 2), "x"), `[[1,2],"x"]`},
		{"in slice", []tuple.Tuple[string, bool]{tuple.Of("k", true)}, `[["k",true]]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.in)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}

	t.Run("not portable", func(t *testing.T) {
		_, err := json.Marshal(tuple.Of(func() {}, 1))
		require.ErrorIs(t, err, errors.ErrNotPortable)
	})
}

func TestUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want tuple.Tuple[string, int]
	}{
		{"both", `["x",5]`, tuple.Of("x", 5)},
		{"null first", `[null,5]`, tuple.New(option.None[string](), option.Some(5))},
		{"one element", `["x"]`, tuple.New(option.Some("x"), option.None[int]())},
		{"empty array", `[]`, tuple.Empty[string, int]()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got tuple.Tuple[string, int]
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
		})
	}

	t.Run("too many elements", func(t *testing.T) {
		var got tuple.Tuple[string, int]
		err := json.Unmarshal([]byte(`["x",1,2]`), &got)
		require.ErrorIs(t, err, errors.ErrOutOfRange)
	})

	t.Run("wrong member type", func(t *testing.T) {
		var got tuple.Tuple[string, int]
		require.Error(t, json.Unmarshal([]byte(`["x","y"]`), &got))
	})

	t.Run("not an array", func(t *testing.T) {
		var got tuple.Tuple[string, int]
		require.Error(t, json.Unmarshal([]byte(`{"first":"x"}`), &got))
	})
}

func TestYAML(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		data, err := yaml.Marshal(tuple.New(option.Some("a"), option.None[int]()))
		require.NoError(t, err)
		assert.Equal(t, "- a\n- null\n", string(data))
	})

	t.Run("marshal not portable", func(t *testing.T) {
		_, err := yaml.Marshal(tuple.Of(1, make(chan int)))
		require.ErrorIs(t, err, errors.ErrNotPortable)
	})

	t.Run("unmarshal", func(t *testing.T) {
		var got tuple.Tuple[string, int]
		require.NoError(t, yaml.Unmarshal([]byte("[x, 5]"), &got))
		assert.True(t, tuple.Of("x", 5).Equal(got))

		require.NoError(t, yaml.Unmarshal([]byte("- ~\n- 7\n"), &got))
		assert.True(t, tuple.New(option.None[string](), option.Some(7)).Equal(got))
	})

	t.Run("unmarshal rejects mappings", func(t *testing.T) {
		var got tuple.Tuple[string, int]
		err := yaml.Unmarshal([]byte("first: x\n"), &got)
		require.ErrorIs(t, err, errors.ErrIncompatible)
	})

	t.Run("unmarshal rejects long sequences", func(t *testing.T) {
		var got tuple.Tuple[string, int]
		err := yaml.Unmarshal([]byte("[a, 1, 2]"), &got)
		require.ErrorIs(t, err, errors.ErrOutOfRange)
	})
}
