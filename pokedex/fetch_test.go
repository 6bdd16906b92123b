package pokedex

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"pgregory.net/rapid"

	"github.com/Nicolas-rosa/Pokedex/types"
)

func TestFetchRange_PreservesIDOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 40).Draw(t, "n")
		delays := rapid.SliceOfN(rapid.IntRange(0, 300), n, n).Draw(t, "delays_us")

		src := newFakeSource()
		for i, d := range delays {
			src.delays[i+1] = time.Duration(d) * time.Microsecond
		}

		res := FetchRange(context.Background(), src, n)
		if res.Status != FetchSucceeded {
			t.Fatalf("status = %v, err = %v", res.Status, res.Err)
		}
		if res.Err != nil {
			t.Fatalf("unexpected error: %v", res.Err)
		}
		if len(res.Records) != n {
			t.Fatalf("got %d records, want %d", len(res.Records), n)
		}
		for i, p := range res.Records {
			if p.ID() != i+1 {
				t.Fatalf("record %d has id %d", i, p.ID())
			}
		}
	})
}

func TestFetchRange_AnyFailureFailsBatch(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 40).Draw(t, "n")
		failing := rapid.SliceOfNDistinct(rapid.IntRange(1, n), 1, n, rapid.ID[int]).Draw(t, "failing")

		src := newFakeSource()
		for _, id := range failing {
			src.failures[id] = &types.NotFoundError{ID: id}
		}

		res := FetchRange(context.Background(), src, n, WithConcurrency(4))
		if res.Status != FetchFailed {
			t.Fatalf("status = %v, want failed", res.Status)
		}
		if res.Records != nil {
			t.Fatalf("records must not be exposed on failure, got %d", len(res.Records))
		}

		var batch *BatchFetchError
		if !errors.As(res.Err, &batch) {
			t.Fatalf("expected *BatchFetchError, got %T", res.Err)
		}
		if batch.Failures != len(failing) {
			t.Fatalf("failures = %d, want %d", batch.Failures, len(failing))
		}
		if _, ok := src.failures[batch.ID]; !ok {
			t.Fatalf("first failure id %d is not a failing id", batch.ID)
		}
		for id := 1; id <= n; id++ {
			if got := src.callCount(id); got != 1 {
				t.Fatalf("id %d looked up %d times, want 1", id, got)
			}
		}
	})
}

func TestFetchAll_FirstErrorIsUnwrappable(t *testing.T) {
	src := newFakeSource()
	src.failures[7] = &types.TransportError{ID: 7, Err: errors.New("connection reset")}

	res := FetchRange(context.Background(), src, 10)

	require.Equal(t, FetchFailed, res.Status)
	var te *types.TransportError
	require.True(t, errors.As(res.Err, &te))
	assert.Equal(t, 7, te.ID)
	assert.Contains(t, res.Err.Error(), "connection reset")
	assert.Contains(t, res.Err.Error(), "id 7")
}

func TestFetchAll_ConcurrencyCap(t *testing.T) {
	src := newFakeSource()
	for id := 1; id <= 30; id++ {
		src.delays[id] = 2 * time.Millisecond
	}

	res := FetchRange(context.Background(), src, 30, WithConcurrency(3))

	require.Equal(t, FetchSucceeded, res.Status)
	assert.LessOrEqual(t, src.maxInFlight, int32(3))
	assert.Len(t, res.Records, 30)
}

func TestFetchAll_Unbounded(t *testing.T) {
	src := newFakeSource()
	for id := 1; id <= 20; id++ {
		src.delays[id] = 5 * time.Millisecond
	}

	res := FetchRange(context.Background(), src, 20, WithConcurrency(0))

	require.Equal(t, FetchSucceeded, res.Status)
	assert.Greater(t, src.maxInFlight, int32(1), "lookups should overlap")
}

func TestFetchAll_EmptyBatch(t *testing.T) {
	res := FetchAll(context.Background(), newFakeSource(), nil)
	assert.Equal(t, FetchSucceeded, res.Status)
	assert.Empty(t, res.Records)
}

func TestFetchAll_NoGoroutineLeak(t *testing.T) {
	defer goleak.VerifyNone(t)

	src := newFakeSource()
	src.failures[3] = &types.NotFoundError{ID: 3}
	for id := 1; id <= 10; id++ {
		src.delays[id] = time.Millisecond
	}

	_ = FetchRange(context.Background(), src, 10)
	_ = FetchRange(context.Background(), newFakeSource(), 10, WithConcurrency(2))
}

func TestFetchStatusString(t *testing.T) {
	assert.Equal(t, "in-progress", FetchInProgress.String())
	assert.Equal(t, "succeeded", FetchSucceeded.String())
	assert.Equal(t, "failed", FetchFailed.String())
	assert.Equal(t, "unknown", FetchStatus(42).String())
}

func TestIDRange(t *testing.T) {
	assert.Nil(t, IDRange(0))
	assert.Equal(t, []int{1, 2, 3}, IDRange(3))
}
