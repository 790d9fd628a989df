package ratelimit_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/UnknownOlympus/choprest/internal/ratelimit"
	"github.com/UnknownOlympus/choprest/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2025, time.March, 1, 12, 0, 30, 0, time.UTC)

func TestLimiter_Acquire(t *testing.T) {
	logger := slog.Default()

	t.Run("31st call waits for the window", func(t *testing.T) {
		clock := mocks.NewClock(start)
		limiter := ratelimit.New(ratelimit.Config{MaxPerMinute: 30}, logger, ratelimit.WithClock(clock))
		ctx := t.Context()

		for range 30 {
			require.NoError(t, limiter.Acquire(ctx))
		}
		assert.Empty(t, clock.Sleeps())
		assert.Equal(t, 30, limiter.Count())

		require.NoError(t, limiter.Acquire(ctx))

		assert.Equal(t, []time.Duration{time.Minute}, clock.Sleeps())
		assert.Equal(t, start.Add(time.Minute), clock.Now())
		assert.Equal(t, 1, limiter.Count())
	})

	t.Run("base delay before every call", func(t *testing.T) {
		clock := mocks.NewClock(start)
		limiter := ratelimit.New(ratelimit.Config{Delay: time.Second}, logger, ratelimit.WithClock(clock))

		for range 3 {
			require.NoError(t, limiter.Acquire(t.Context()))
		}

		assert.Equal(t, []time.Duration{time.Second, time.Second, time.Second}, clock.Sleeps())
	})

	t.Run("delay still applies after a window wait", func(t *testing.T) {
		clock := mocks.NewClock(start)
		limiter := ratelimit.New(
			ratelimit.Config{Delay: time.Second, MaxPerMinute: 2}, logger, ratelimit.WithClock(clock),
		)

		for range 3 {
			require.NoError(t, limiter.Acquire(t.Context()))
		}

		// admissions at +1s and +2s, the third waits until +61s and then sleeps the delay
		assert.Equal(t, []time.Duration{time.Second, time.Second, 59 * time.Second, time.Second}, clock.Sleeps())
	})

	t.Run("never more than the cap in any rolling minute", func(t *testing.T) {
		clock := mocks.NewClock(start)
		const maxPerMinute = 5
		limiter := ratelimit.New(ratelimit.Config{MaxPerMinute: maxPerMinute}, logger, ratelimit.WithClock(clock))
		gaps := []time.Duration{0, 3 * time.Second, 0, 20 * time.Second, time.Second, 0, 45 * time.Second, 0, 0}

		var admitted []time.Time
		for i := range 60 {
			clock.Advance(gaps[i%len(gaps)])
			require.NoError(t, limiter.Acquire(t.Context()))
			admitted = append(admitted, clock.Now())
		}

		for i := 0; i+maxPerMinute < len(admitted); i++ {
			assert.GreaterOrEqual(t, admitted[i+maxPerMinute].Sub(admitted[i]), ratelimit.Window,
				"calls %d and %d are inside one window", i, i+maxPerMinute)
		}
	})

	t.Run("window moves on its own", func(t *testing.T) {
		clock := mocks.NewClock(start)
		limiter := ratelimit.New(ratelimit.Config{MaxPerMinute: 2}, logger, ratelimit.WithClock(clock))

		require.NoError(t, limiter.Acquire(t.Context()))
		require.NoError(t, limiter.Acquire(t.Context()))
		clock.Advance(2 * time.Minute)
		require.NoError(t, limiter.Acquire(t.Context()))

		assert.Empty(t, clock.Sleeps())
		assert.Equal(t, 1, limiter.Count())
	})

	t.Run("cancelled while waiting", func(t *testing.T) {
		clock := mocks.NewClock(start)
		limiter := ratelimit.New(ratelimit.Config{MaxPerMinute: 1}, logger, ratelimit.WithClock(clock))
		ctx, cancel := context.WithCancel(t.Context())

		require.NoError(t, limiter.Acquire(ctx))
		cancel()
		err := limiter.Acquire(ctx)

		require.ErrorIs(t, err, context.Canceled)
		assert.ErrorContains(t, err, "window wait interrupted")
		assert.Equal(t, 1, limiter.Count())
	})

	t.Run("observer sees every wait", func(t *testing.T) {
		clock := mocks.NewClock(start)
		var reasons []string
		limiter := ratelimit.New(
			ratelimit.Config{Delay: time.Second, MaxPerMinute: 1},
			logger,
			ratelimit.WithClock(clock),
			ratelimit.WithWaitObserver(func(reason string, _ time.Duration) { reasons = append(reasons, reason) }),
		)

		require.NoError(t, limiter.Acquire(t.Context()))
		require.NoError(t, limiter.Acquire(t.Context()))

		assert.Equal(t, []string{"delay", "window", "delay"}, reasons)
	})
}

func TestLimiter_Penalize(t *testing.T) {
	clock := mocks.NewClock(start)
	limiter := ratelimit.New(
		ratelimit.Config{MaxPerMinute: 3, Cooldown: time.Minute}, slog.Default(), ratelimit.WithClock(clock),
	)

	for range 3 {
		require.NoError(t, limiter.Acquire(t.Context()))
	}
	require.NoError(t, limiter.Penalize(t.Context()))

	assert.Equal(t, []time.Duration{time.Minute}, clock.Sleeps())
	assert.Zero(t, limiter.Count())

	require.NoError(t, limiter.Acquire(t.Context()))
	assert.Len(t, clock.Sleeps(), 1, "fresh window must not wait")
}

func TestDefaultConfig(t *testing.T) {
	cfg := ratelimit.DefaultConfig()

	assert.Equal(t, time.Second, cfg.Delay)
	assert.Equal(t, 30, cfg.MaxPerMinute)
	assert.Equal(t, time.Minute, cfg.Cooldown)
}

func TestSystemClock_Sleep(t *testing.T) {
	clock := ratelimit.SystemClock{}

	require.NoError(t, clock.Sleep(t.Context(), time.Millisecond))

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	require.ErrorIs(t, clock.Sleep(ctx, time.Hour), context.Canceled)
}
