package tuple_test

import (
	"context"
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/authcorp/libs/go/tuple"
)

func TestParallelCollectorsMatchSequential(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("PairParallel equals Pair", prop.ForAll(
		func(items []int, partitions int) bool {
			got, err := tuple.PairParallel(context.Background(), items, tuple.Config{Partitions: partitions})
			if err != nil {
				return false
			}
			want := tuple.Pair(items...)
			if len(got) != len(want) {
				return false
			}
			for i := range want {
				if !want[i].Equal(got[i]) || want[i].IsPartial() != got[i].IsPartial() {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int()),
		gen.IntRange(1, 16),
	))

	properties.Property("parallel MapAll equals MapAll", prop.ForAll(
		func(keys []int, partitions int) bool {
			names := []string{"foo", "bar", "baz"}
			tuples := make([]tuple.Tuple[string, int], len(keys))
			for i, k := range keys {
				tuples[i] = tuple.Of(names[k], i)
			}
			got, err := tuple.CollectParallel(context.Background(), tuples, tuple.MapAllCollector[string, int](), tuple.Config{Partitions: partitions})
			if err != nil {
				return false
			}
			want, err := tuple.MapAll(tuples...)
			if err != nil {
				return false
			}
			if len(got) != len(want) {
				return false
			}
			for k, values := range want {
				other := got[k]
				if len(other) != len(values) {
					return false
				}
				for i := range values {
					if values[i] != other[i] {
						return false
					}
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 2)),
		gen.IntRange(1, 8),
	))

	properties.TestingRun(t)
}

func TestEqualTuplesHashEqually(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("copies are equal and hash equally", prop.ForAll(
		func(key string, values []int) bool {
			a := tuple.Of(key, values)
			b := tuple.Of(key, slices.Clone(values))
			return a.Equal(b) && a.Hash() == b.Hash()
		},
		gen.AlphaString(),
		gen.SliceOf(gen.Int()),
	))

	properties.Property("different keys are not equal", prop.ForAll(
		func(a, b string) bool {
			return tuple.Of(a, 0).Equal(tuple.Of(b, 0)) == (a == b)
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
