package tuple

import (
	"iter"
	"slices"

	"github.com/authcorp/libs/go/tuple/errors"
)

// Pair groups adjacent items two at a time. An odd trailing item ends up in
// a partial tuple whose second member is absent.
//
// For example, given items:
//
//	A, A, B, B, H
//
// Pair returns:
//
//	(A, A), (B, B), (H, <nil>)
func Pair[S any](items ...S) []Tuple[S, S] {
	return PairSeq(slices.Values(items))
}

// PairSeq is Pair over a sequence. A nil sequence is treated as empty.
func PairSeq[S any](seq iter.Seq[S]) []Tuple[S, S] {
	tuples, _ := Collect(seq, PairCollector[S](0))
	return tuples
}

// PairChan pairs the values received from ch until it is closed.
func PairChan[S any](ch <-chan S) []Tuple[S, S] {
	return PairSeq(ChanSeq(ch))
}

// PairStrict is PairSeq for inputs that must not contain nil elements
// (nil pointers, interfaces, maps, slices, funcs or channels). It fails
// with errors.ErrNilArgument at the first nil element and returns no tuples.
func PairStrict[S any](seq iter.Seq[S]) ([]Tuple[S, S], error) {
	acc := NewAccumulator[S](0)
	if seq == nil {
		return acc.Tuples(), nil
	}
	index := 0
	for item := range seq {
		if isNil(item) {
			return nil, errors.NilArgument("item").WithDetail("index", index)
		}
		acc.Add(item)
		index++
	}
	return acc.Tuples(), nil
}

// Pairs lazily yields the tuples of PairSeq. A tuple is yielded as soon as
// its second member has been pulled; the partial tuple, if any, comes last.
func Pairs[S any](seq iter.Seq[S]) iter.Seq[Tuple[S, S]] {
	return func(yield func(Tuple[S, S]) bool) {
		if seq == nil {
			return
		}
		var pending Tuple[S, S]
		for item := range seq {
			if !pending.partial {
				pending = partial(item)
				continue
			}
			if !yield(pending.WithSecond(item)) {
				return
			}
			pending = Tuple[S, S]{}
		}
		if pending.partial {
			yield(pending)
		}
	}
}

// Accumulator is the mutable state of the pairing engine. It holds at most
// one partial tuple, always the last one.
type Accumulator[S any] struct {
	tuples []Tuple[S, S]
}

// NewAccumulator returns an empty accumulator with room for capacity tuples.
func NewAccumulator[S any](capacity int) *Accumulator[S] {
	return &Accumulator[S]{tuples: make([]Tuple[S, S], 0, max(capacity, 0))}
}

// Add pairs item with a pending partial tuple, or starts a new one.
func (a *Accumulator[S]) Add(item S) {
	if n := len(a.tuples); n > 0 && a.tuples[n-1].partial {
		a.tuples[n-1] = a.tuples[n-1].WithSecond(item)
		return
	}
	a.tuples = append(a.tuples, partial(item))
}

// Merge returns a new accumulator holding the elements of a followed by the
// elements of other. Elements are re-paired one by one, so a partial tuple
// at the end of a is completed by the first element of other. Neither input
// is modified.
func (a *Accumulator[S]) Merge(other *Accumulator[S]) *Accumulator[S] {
	merged := NewAccumulator[S](len(a.tuples) + len(other.tuples))
	merged.addElements(a.tuples)
	merged.addElements(other.tuples)
	return merged
}

func (a *Accumulator[S]) addElements(tuples []Tuple[S, S]) {
	for _, t := range tuples {
		a.Add(t.first.OrZero())
		if !t.partial {
			a.Add(t.second.OrZero())
		}
	}
}

// Len returns the number of tuples, the partial one included.
func (a *Accumulator[S]) Len() int {
	return len(a.tuples)
}

// Tuples returns a copy of the accumulated tuples.
func (a *Accumulator[S]) Tuples() []Tuple[S, S] {
	return slices.Clone(a.tuples)
}

// Collector describes a fold over a sequence in four steps, so that the same
// fold can run sequentially with Collect or over partitions with
// CollectParallel.
type Collector[T, A, R any] struct {
	// Supply returns a fresh, empty accumulation.
	Supply func() A
	// Accumulate folds one item into acc.
	Accumulate func(acc A, item T) (A, error)
	// Combine merges two accumulations; left holds the earlier items.
	Combine func(left, right A) (A, error)
	// Finish converts the accumulation into the result.
	Finish func(acc A) R
}

// Collect runs c over seq. A nil sequence is treated as empty.
func Collect[T, A, R any](seq iter.Seq[T], c Collector[T, A, R]) (R, error) {
	acc := c.Supply()
	if seq != nil {
		for item := range seq {
			var err error
			if acc, err = c.Accumulate(acc, item); err != nil {
				var zero R
				return zero, err
			}
		}
	}
	return c.Finish(acc), nil
}

// PairCollector returns the pairing engine as a Collector. capacity sizes
// the accumulator of each partition.
func PairCollector[S any](capacity int) Collector[S, *Accumulator[S], []Tuple[S, S]] {
	return Collector[S, *Accumulator[S], []Tuple[S, S]]{
		Supply: func() *Accumulator[S] {
			return NewAccumulator[S](capacity)
		},
		Accumulate: func(acc *Accumulator[S], item S) (*Accumulator[S], error) {
			acc.Add(item)
			return acc, nil
		},
		Combine: func(left, right *Accumulator[S]) (*Accumulator[S], error) {
			return left.Merge(right), nil
		},
		Finish: func(acc *Accumulator[S]) []Tuple[S, S] {
			return acc.Tuples()
		},
	}
}
