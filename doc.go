/*
Package tuple provides an immutable ordered pair and the utilities that move
values between tuples and ordinary collections.

A Tuple[U, V] holds two independently typed members. Either member may be
absent, which is modelled with option.Option rather than a Go nil: a present
member can still hold a nil pointer or interface.

	t := tuple.Of("key", 42)
	u := t.WithSecond(43)    // t is unchanged
	s := u.Swapped()         // Tuple[int, string]
	fmt.Println(s)           // (43, key)

The aggregation functions work on slices (through variadic arguments) and on
iter.Seq values. A channel can be fed to any of them through ChanSeq.

	pairs := tuple.Pair("a", "b", "c")          // [(a, b) (c, <nil>)]
	zipped := tuple.Zip([]int{0, 1}, []string{"x", "y", "z"})
	groups, err := tuple.MapAll(tuple.Of("foo", 1), tuple.Of("foo", 2))
	m, err := tuple.Map(zipped...)   // CONFLICT error on duplicate keys

Pairing can also run over partitions of a slice with CollectParallel or
PairParallel; partial results are re-threaded element by element so the
output matches the sequential result for every partitioning.
*/
package tuple
