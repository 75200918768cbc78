package aggregation

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForEach_PreservesOrderByIndex(t *testing.T) {
	results := make([]int, 20)

	err := ForEach(context.Background(), len(results), func(ctx context.Context, i int) error {
		// later indexes finish first
		time.Sleep(time.Duration(len(results)-i) * time.Millisecond)
		results[i] = i * 10
		return nil
	})

	require.NoError(t, err)
	for i, v := range results {
		assert.Equal(t, i*10, v)
	}
}

func TestForEach_FailFast(t *testing.T) {
	boom := errors.New("sub-fetch failed")

	err := ForEach(context.Background(), 10, func(ctx context.Context, i int) error {
		if i == 3 {
			return boom
		}
		return nil
	})

	assert.ErrorIs(t, err, boom)
}

func TestForEach_ConcurrencyBounded(t *testing.T) {
	var current, peak atomic.Int32

	err := ForEach(context.Background(), 50, func(ctx context.Context, i int) error {
		n := current.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(2 * time.Millisecond)
		current.Add(-1)
		return nil
	})

	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(DefaultConcurrency))
}

func TestForEach_ZeroItems(t *testing.T) {
	called := false
	err := ForEach(context.Background(), 0, func(ctx context.Context, i int) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.False(t, called)
}
