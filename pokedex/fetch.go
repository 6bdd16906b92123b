package pokedex

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Nicolas-rosa/Pokedex/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultCount is the number of records loaded per run.
const DefaultCount = 150

// RecordSet is the ordered sequence of all records fetched for a run.
type RecordSet []types.Pokemon

// FetchStatus tracks a batch from start to its single terminal state.
type FetchStatus int

const (
	FetchInProgress FetchStatus = iota
	FetchSucceeded
	FetchFailed
)

func (s FetchStatus) String() string {
	switch s {
	case FetchInProgress:
		return "in-progress"
	case FetchSucceeded:
		return "succeeded"
	case FetchFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FetchResult is the outcome of a batch. Records is non-nil only when
// Status is FetchSucceeded; Err is non-nil only when it is FetchFailed.
type FetchResult struct {
	Status  FetchStatus
	Records RecordSet
	Err     error
	Elapsed time.Duration
}

// BatchFetchError reports a failed batch. It carries the first failure
// observed and how many lookups failed in total.
type BatchFetchError struct {
	ID       int
	Failures int
	Total    int
	Err      error
}

func (e *BatchFetchError) Error() string {
	return fmt.Sprintf("fetch %d pokemon: %d failed, first (id %d): %v", e.Total, e.Failures, e.ID, e.Err)
}

func (e *BatchFetchError) Unwrap() error { return e.Err }

type fetchOptions struct {
	concurrency int
	logger      *zap.Logger
}

// FetchOption configures a batch fetch.
type FetchOption func(*fetchOptions)

// WithConcurrency caps in-flight lookups. Zero or negative means unbounded.
func WithConcurrency(n int) FetchOption {
	return func(o *fetchOptions) { o.concurrency = n }
}

func WithFetchLogger(l *zap.Logger) FetchOption {
	return func(o *fetchOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// IDRange returns the contiguous identifiers 1..n.
func IDRange(n int) []int {
	if n <= 0 {
		return nil
	}
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i + 1
	}
	return ids
}

// FetchRange looks up ids 1..n. See FetchAll.
func FetchRange(ctx context.Context, src types.PokemonSource, n int, opts ...FetchOption) FetchResult {
	return FetchAll(ctx, src, IDRange(n), opts...)
}

// FetchAll issues one lookup per id concurrently and waits for every one of
// them to settle. The batch succeeds only if all lookups succeed, in which
// case the records come back in ids order. Otherwise no records are
// returned and Err is a *BatchFetchError wrapping the first failure.
//
// A failure does not cancel its siblings: each id gets exactly one lookup.
func FetchAll(ctx context.Context, src types.PokemonSource, ids []int, opts ...FetchOption) FetchResult {
	o := fetchOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	results := make([]types.Pokemon, len(ids))

	var (
		mu       sync.Mutex
		first    *BatchFetchError
		failures int
	)

	var g errgroup.Group
	if o.concurrency > 0 {
		g.SetLimit(o.concurrency)
	}

	for i, id := range ids {
		g.Go(func() error {
			p, err := src.GetPokemon(ctx, id)
			if err != nil {
				o.logger.Debug("lookup failed", zap.Int("id", id), zap.Error(err))
				mu.Lock()
				failures++
				if first == nil {
					first = &BatchFetchError{ID: id, Err: err}
				}
				mu.Unlock()
				return err
			}
			results[i] = p
			return nil
		})
	}

	// The join error is the same first failure recorded above.
	_ = g.Wait()
	elapsed := time.Since(start)

	if first != nil {
		first.Failures = failures
		first.Total = len(ids)
		o.logger.Warn("batch fetch failed",
			zap.Int("total", len(ids)),
			zap.Int("failures", failures),
			zap.Int("first_id", first.ID),
			zap.Duration("elapsed", elapsed),
			zap.Error(first.Err),
		)
		return FetchResult{Status: FetchFailed, Err: first, Elapsed: elapsed}
	}

	o.logger.Info("batch fetch succeeded",
		zap.Int("total", len(ids)),
		zap.Duration("elapsed", elapsed),
	)
	return FetchResult{Status: FetchSucceeded, Records: RecordSet(results), Elapsed: elapsed}
}
