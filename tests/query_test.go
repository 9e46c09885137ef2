package tests

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/seq3/pkg/seq"
	"github.com/ib-77/seq3/pkg/seq/agg"
	"github.com/ib-77/seq3/pkg/seq/memo"
	"github.com/ib-77/seq3/pkg/seq/order"
)

// TestQueryPipeline chains creation, filtering, ordering and aggregation the
// way a consumer of the library would.
func TestQueryPipeline(t *testing.T) {
	words := seq.From([]string{"delta", "alpha", "charlie", "bravo", "alpha"})

	pipeline := order.By(
		words.Distinct().Where(func(w string) bool { return w != "charlie" }),
		func(w string) string { return w },
	)

	got, err := agg.ToArray(pipeline)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "bravo", "delta"}, got)

	n, err := agg.Count(pipeline)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestOrderingScenario(t *testing.T) {
	got, err := agg.ToArray(order.By(seq.From([]int{3, 1, 4, 2}), func(v int) int { return v }))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, got)

	got, err = agg.ToArray(order.ByDescending(seq.From([]int{3, 1, 4, 2}), func(v int) int { return v }))
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 2, 1}, got)
}

func TestSetScenarios(t *testing.T) {
	union, err := agg.ToArray(seq.From([]int{1, 2, 3}).Union(seq.From([]int{3, 4, 5})))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, union)

	intersect, err := agg.ToArray(seq.From([]int{1, 2, 3, 4}).Intersect(seq.From([]int{3, 4, 5, 6})))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, intersect)

	distinct, err := agg.ToArray(seq.From([]int{1, 2, 2, 3, 3, 3}).Distinct())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, distinct)
}

func TestMemoizedScenario(t *testing.T) {
	var calls int32
	square := func(_ context.Context, v int) (int, error) {
		atomic.AddInt32(&calls, 1)
		return v * v, nil
	}

	s := memo.Map(seq.From([]int{1, 2, 3, 1, 2, 3}), square)

	got, err := agg.ToArray(s)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 9, 1, 4, 9}, got)
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))

	// a second full traversal reuses the same cache
	_, err = agg.ToArray(s)
	require.NoError(t, err)
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestEmptyScenarios(t *testing.T) {
	all, err := agg.All(seq.Empty[int](), func(x int) bool { return x > 0 })
	require.NoError(t, err)
	assert.True(t, all)

	hasAny, err := agg.Any(seq.Empty[int]())
	require.NoError(t, err)
	assert.False(t, hasAny)
}

// TestAsyncPipeline drives a channel-backed source through transforms and a
// memoized stage, end to end under a context.
func TestAsyncPipeline(t *testing.T) {
	ctx := context.Background()

	ch := make(chan string)
	go func() {
		defer close(ch)
		for _, v := range []string{"a", "b", "a", "c", "b"} {
			ch <- v
		}
	}()

	var calls int32
	upper := memo.MapAsync(
		seq.FromChan(ch).Where(func(v string) bool { return v != "c" }),
		func(_ context.Context, v string) (string, error) {
			atomic.AddInt32(&calls, 1)
			return strings.ToUpper(v), nil
		},
	)

	got, err := agg.ToArrayAsync(ctx, upper)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "A", "B"}, got)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))

	// and a synchronous pull on the async pipeline is refused
	_, err = agg.ToArray(upper)
	assert.ErrorIs(t, err, seq.ErrModeMismatch)
}

func TestBridgeRoundTrip(t *testing.T) {
	ctx := seq.WithBufferOptions(context.Background(), 4)

	doubled := seq.Select(seq.Range(1, 5), func(v int) int { return v * 2 })
	back := seq.FromChan(seq.ToChan(ctx, doubled))

	got, err := agg.ToArrayAsync(ctx, back)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 6, 8, 10}, got)
}
