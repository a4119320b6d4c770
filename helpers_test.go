package tuple_test

import (
	"iter"
	"testing"

	"github.com/authcorp/libs/go/tuple"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertTuples compares with Tuple.Equal, which ignores the partial flag.
func assertTuples[U, V any](t *testing.T, want, got []tuple.Tuple[U, V]) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Truef(t, want[i].Equal(got[i]), "tuple %d: want %v, got %v", i, want[i], got[i])
	}
}

// countingSeq yields 0..n-1 and records how many values were produced.
func countingSeq(n int, produced *int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range n {
			*produced++
			if !yield(i) {
				return
			}
		}
	}
}
