package tuple

import (
	"iter"
	"slices"

	"github.com/authcorp/libs/go/tuple/option"
)

// Unzip splits tuples into a tuple of two slices holding every first and
// every second member in order. Both slices have len(tuples) elements;
// absent members stay absent.
func Unzip[U, V any](tuples ...Tuple[U, V]) Tuple[[]option.Option[U], []option.Option[V]] {
	return UnzipSeq(slices.Values(tuples))
}

// UnzipSeq is Unzip over a sequence. A nil sequence is treated as empty.
func UnzipSeq[U, V any](seq iter.Seq[Tuple[U, V]]) Tuple[[]option.Option[U], []option.Option[V]] {
	firsts := make([]option.Option[U], 0)
	seconds := make([]option.Option[V], 0)
	if seq != nil {
		for t := range seq {
			firsts = append(firsts, t.first)
			seconds = append(seconds, t.second)
		}
	}
	return Of(firsts, seconds)
}

// UnzipValues splits tuples into two plain slices. Absent members become
// zero values.
func UnzipValues[U, V any](tuples ...Tuple[U, V]) ([]U, []V) {
	firsts := make([]U, len(tuples))
	seconds := make([]V, len(tuples))
	for i, t := range tuples {
		firsts[i], seconds[i] = t.Unpack()
	}
	return firsts, seconds
}
