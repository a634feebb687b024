package scrape

import (
	"context"
	"log/slog"
	"time"

	"github.com/docmirror/docscrape"
)

// SleepFunc pauses for d or until the context is canceled. It is injected
// so tests can run the retry loop with a zero-delay clock without changing
// the logic.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the real SleepFunc. It returns the context error if cancellation
// wins the race.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// FetchWithRetry attempts to fetch a URL up to retries+1 times, sleeping
// delay between attempts. Each attempt is logged at debug level, each
// intermediate failure at warn, and the final failure at error. The
// returned error on exhaustion is EUNAVAILABLE wrapping the last attempt's
// error message.
func FetchWithRetry(ctx context.Context, fetcher docscrape.Fetcher, url string, retries int, delay time.Duration, sleep SleepFunc, logger *slog.Logger) (string, error) {
	attempts := retries + 1

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		logger.Debug("requesting page", "url", url, "attempt", attempt, "attempts", attempts)

		html, err := fetcher.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt == attempts {
			break
		}

		logger.Warn("fetch attempt failed", "url", url, "attempt", attempt, "err", err)
		if err := sleep(ctx, delay); err != nil {
			return "", err
		}
	}

	logger.Error("fetch failed", "url", url, "attempts", attempts, "err", lastErr)
	return "", docscrape.Errorf(docscrape.EUNAVAILABLE, "failed to fetch %s after %d attempts: %v", url, attempts, lastErr)
}
