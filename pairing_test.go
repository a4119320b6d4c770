package tuple_test

import (
	"slices"
	"testing"

	"github.com/authcorp/libs/go/tuple"
	"github.com/authcorp/libs/go/tuple/errors"
	"github.com/authcorp/libs/go/tuple/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func half(s string) tuple.Tuple[string, string] {
	return tuple.New(option.Some(s), option.None[string]())
}

func TestPair(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  []tuple.Tuple[string, string]
	}{
		{"empty", nil, []tuple.Tuple[string, string]{}},
		{"single", []string{"x"}, []tuple.Tuple[string, string]{half("x")}},
		{"even", []string{"A", "A", "B", "B"}, []tuple.Tuple[string, string]{
			tuple.Of("A", "A"), tuple.Of("B", "B"),
		}},
		{"odd", []string{"A", "A", "B", "B", "H"}, []tuple.Tuple[string, string]{
			tuple.Of("A", "A"), tuple.Of("B", "B"), half("H"),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tuple.Pair(tt.items...)
			require.NotNil(t, got)
			assertTuples(t, tt.want, got)
			assertTuples(t, tt.want, tuple.PairSeq(slices.Values(tt.items)))
			assertTuples(t, tt.want, slices.Collect(tuple.Pairs(slices.Values(tt.items))))
		})
	}
}

func TestPairPartialOnlyLast(t *testing.T) {
	got := tuple.Pair(1, 2, 3, 4, 5)
	require.Len(t, got, 3)
	assert.False(t, got[0].IsPartial())
	assert.False(t, got[1].IsPartial())
	assert.True(t, got[2].IsPartial())

	for _, tp := range tuple.Pair(1, 2, 3, 4) {
		assert.False(t, tp.IsPartial())
	}
}

func TestPairKeepsNilElements(t *testing.T) {
	var p *int
	got := tuple.Pair(p, p, p)
	require.Len(t, got, 2)
	assert.True(t, got[0].First().IsSome())
	assert.True(t, got[0].Second().IsSome())
	assert.Nil(t, got[0].Second().Unwrap())
	assert.True(t, got[1].Second().IsNone())
}

func TestPairNilSeq(t *testing.T) {
	assert.Empty(t, tuple.PairSeq[int](nil))
	assert.Empty(t, slices.Collect(tuple.Pairs[int](nil)))

	got, err := tuple.PairStrict[int](nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPairsIsLazy(t *testing.T) {
	produced := 0
	for tp := range tuple.Pairs(countingSeq(100, &produced)) {
		assert.True(t, tuple.Of(0, 1).Equal(tp))
		break
	}
	assert.Equal(t, 2, produced)
}

func TestPairStrict(t *testing.T) {
	a, b := "a", "b"

	got, err := tuple.PairStrict(slices.Values([]*string{&a, &b, &a}))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[1].IsPartial())

	_, err = tuple.PairStrict(slices.Values([]*string{&a, nil, &b}))
	require.ErrorIs(t, err, errors.ErrNilArgument)

	var tupleErr *errors.Error
	require.ErrorAs(t, err, &tupleErr)
	assert.Equal(t, 1, tupleErr.Details["index"])

	_, err = tuple.PairStrict(slices.Values([]any{1, nil}))
	require.ErrorIs(t, err, errors.ErrNilArgument)
}

func TestPairSkipNil(t *testing.T) {
	a, b := "a", "b"
	got := tuple.PairSeq(tuple.SkipNil(slices.Values([]*string{nil, &a, nil, &b, nil})))

	require.Len(t, got, 1)
	assert.Same(t, &a, got[0].First().Unwrap())
	assert.Same(t, &b, got[0].Second().Unwrap())
}

func TestPairChannel(t *testing.T) {
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	ch <- 3
	close(ch)

	got := tuple.PairChan(ch)
	assertTuples(t, []tuple.Tuple[int, int]{
		tuple.Of(1, 2),
		tuple.New(option.Some(3), option.None[int]()),
	}, got)
}

func TestAccumulatorMergeAtEverySplit(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f", "g"}

	for n := 0; n <= len(items); n++ {
		want := tuple.Pair(items[:n]...)

		for split := 0; split <= n; split++ {
			left := tuple.NewAccumulator[string](0)
			for _, s := range items[:split] {
				left.Add(s)
			}
			right := tuple.NewAccumulator[string](0)
			for _, s := range items[split:n] {
				right.Add(s)
			}
			leftBefore, rightBefore := left.Tuples(), right.Tuples()

			merged := left.Merge(right)
			got := merged.Tuples()

			require.Equal(t, len(want), merged.Len(), "n=%d split=%d", n, split)
			assertTuples(t, want, got)
			for i := range want {
				assert.Equal(t, want[i].IsPartial(), got[i].IsPartial(), "n=%d split=%d tuple=%d", n, split, i)
			}
			assert.Equal(t, leftBefore, left.Tuples())
			assert.Equal(t, rightBefore, right.Tuples())
		}
	}
}

func TestAccumulatorTuplesIsCopy(t *testing.T) {
	acc := tuple.NewAccumulator[int](4)
	acc.Add(1)
	acc.Add(2)

	out := acc.Tuples()
	out[0] = tuple.Of(9, 9)

	assert.True(t, tuple.Of(1, 2).Equal(acc.Tuples()[0]))
	assert.Equal(t, 1, acc.Len())
}

func TestCollectStopsOnError(t *testing.T) {
	items := []tuple.Tuple[string, int]{
		tuple.Of("a", 1),
		tuple.Of("a", 2),
		tuple.Of("b", 3),
	}
	_, err := tuple.Collect(slices.Values(items), tuple.MapCollector[string, int]())
	require.ErrorIs(t, err, errors.ErrConflict)
}
