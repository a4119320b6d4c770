package tuple

import (
	"context"
	"fmt"
	"runtime"
	"slices"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/authcorp/libs/go/tuple/errors"
)

// Config configures partitioned collection.
type Config struct {
	// Partitions is the number of chunks the input is split into.
	Partitions int

	// MaxConcurrency limits how many partitions are accumulated at once.
	MaxConcurrency int

	// Logger receives debug events about fan-out and fan-in.
	Logger zerolog.Logger
}

// DefaultConfig returns one partition per available CPU.
func DefaultConfig() Config {
	procs := runtime.GOMAXPROCS(0)
	return Config{
		Partitions:     procs,
		MaxConcurrency: procs,
		Logger:         zerolog.Nop(),
	}
}

// Validate fills unset fields with defaults.
func (c *Config) Validate() error {
	if c.Partitions <= 0 {
		c.Partitions = runtime.GOMAXPROCS(0)
	}
	if c.MaxConcurrency <= 0 {
		c.MaxConcurrency = c.Partitions
	}
	return nil
}

// CollectParallel splits items into cfg.Partitions contiguous chunks,
// accumulates every chunk on its own goroutine and combines the partial
// results from left to right. The result equals Collect over the whole
// slice whenever c.Combine is consistent with c.Accumulate.
//
// The first error from any partition, or the context's error, is returned
// and no result is produced.
func CollectParallel[T, A, R any](ctx context.Context, items []T, c Collector[T, A, R], cfg Config) (R, error) {
	var zero R
	if err := cfg.Validate(); err != nil {
		return zero, err
	}

	size := max(1, (len(items)+cfg.Partitions-1)/cfg.Partitions)
	parts := slices.Collect(slices.Chunk(items, size))
	results := make([]A, len(parts))

	log := cfg.Logger.With().
		Int("items", len(items)).
		Int("partitions", len(parts)).
		Logger()
	log.Debug().Int("chunk_size", size).Msg("fan-out")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.MaxConcurrency)
	for i, part := range parts {
		g.Go(func() error {
			acc := c.Supply()
			for _, item := range part {
				if err := gctx.Err(); err != nil {
					return err
				}
				var err error
				if acc, err = c.Accumulate(acc, item); err != nil {
					return errors.Wrap(err, fmt.Sprintf("partition %d", i))
				}
			}
			results[i] = acc
			log.Debug().Int("partition", i).Int("size", len(part)).Msg("partition accumulated")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return zero, err
	}

	acc := c.Supply()
	for i, r := range results {
		if i == 0 {
			acc = r
			continue
		}
		var err error
		if acc, err = c.Combine(acc, r); err != nil {
			return zero, errors.Wrap(err, fmt.Sprintf("combine partition %d", i))
		}
	}
	log.Debug().Msg("fan-in")
	return c.Finish(acc), nil
}

// PairParallel is Pair run through CollectParallel. Its output is identical
// to Pair(items...) for every partitioning.
func PairParallel[S any](ctx context.Context, items []S, cfg Config) ([]Tuple[S, S], error) {
	return CollectParallel(ctx, items, PairCollector[S](0), cfg)
}
