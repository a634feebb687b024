package scrape_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/docmirror/docscrape"
	"github.com/docmirror/docscrape/mock"
	"github.com/docmirror/docscrape/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// noSleep records requested delays without waiting.
func noSleep(delays *[]time.Duration) scrape.SleepFunc {
	return func(ctx context.Context, d time.Duration) error {
		*delays = append(*delays, d)
		return ctx.Err()
	}
}

func TestFetchWithRetry(t *testing.T) {
	t.Parallel()

	t.Run("returns immediately on first success", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				attempts++
				return "<html/>", nil
			},
		}

		var delays []time.Duration
		html, err := scrape.FetchWithRetry(context.Background(), fetcher, "http://x", 3, time.Second, noSleep(&delays), discardLogger())

		require.NoError(t, err)
		assert.Equal(t, "<html/>", html)
		assert.Equal(t, 1, attempts)
		assert.Empty(t, delays)
	})

	t.Run("a permanently failing fetch is attempted exactly retries+1 times", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				attempts++
				return "", errors.New("connection refused")
			},
		}

		var delays []time.Duration
		_, err := scrape.FetchWithRetry(context.Background(), fetcher, "http://x", 3, 2*time.Second, noSleep(&delays), discardLogger())

		require.Error(t, err)
		assert.Equal(t, docscrape.EUNAVAILABLE, docscrape.ErrorCode(err))
		assert.Equal(t, 4, attempts)
		assert.Equal(t, []time.Duration{2 * time.Second, 2 * time.Second, 2 * time.Second}, delays)
	})

	t.Run("zero retries means a single attempt", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				attempts++
				return "", errors.New("boom")
			},
		}

		var delays []time.Duration
		_, err := scrape.FetchWithRetry(context.Background(), fetcher, "http://x", 0, time.Second, noSleep(&delays), discardLogger())

		require.Error(t, err)
		assert.Equal(t, 1, attempts)
		assert.Empty(t, delays)
	})

	t.Run("recovers when a later attempt succeeds", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				attempts++
				if attempts < 3 {
					return "", errors.New("flaky")
				}
				return "ok", nil
			},
		}

		var delays []time.Duration
		html, err := scrape.FetchWithRetry(context.Background(), fetcher, "http://x", 5, time.Second, noSleep(&delays), discardLogger())

		require.NoError(t, err)
		assert.Equal(t, "ok", html)
		assert.Equal(t, 3, attempts)
		assert.Len(t, delays, 2)
	})

	t.Run("cancellation during the retry wait aborts", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				cancel()
				return "", errors.New("boom")
			},
		}

		_, err := scrape.FetchWithRetry(ctx, fetcher, "http://x", 3, time.Second, scrape.Sleep, discardLogger())

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSleep(t *testing.T) {
	t.Parallel()

	t.Run("returns after the delay", func(t *testing.T) {
		t.Parallel()

		start := time.Now()
		err := scrape.Sleep(context.Background(), 10*time.Millisecond)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
	})

	t.Run("returns the context error when canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := scrape.Sleep(ctx, time.Minute)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("zero delay still observes cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := scrape.Sleep(ctx, 0)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
