package crawl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/reservo"
)

// Ensure Fetcher implements reservo.Fetcher.
var _ reservo.Fetcher = (*Fetcher)(nil)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Fetcher wraps a reservo.Fetcher with per-host throttling and retries.
// Application errors (a 404, a rejected request) are returned at once;
// other failures are retried after each of RetryDelays.
type Fetcher struct {
	next    reservo.Fetcher
	limiter *DomainLimiter
	logger  *slog.Logger

	// RetryDelays are the waits between attempts. Defaults to DefaultRetryDelays.
	RetryDelays []time.Duration
}

// NewFetcher creates a Fetcher allowing rps requests per second to each host.
func NewFetcher(next reservo.Fetcher, rps float64, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		next:        next,
		limiter:     NewDomainLimiter(rps),
		logger:      logger,
		RetryDelays: DefaultRetryDelays(),
	}
}

// Fetch retrieves rawURL, waiting for the host's rate limit before every attempt.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	host := hostOf(rawURL)
	maxAttempts := len(f.RetryDelays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := f.limiter.Wait(ctx, host); err != nil {
			return "", err
		}

		html, err := f.next.Fetch(ctx, rawURL)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if reservo.ErrorCode(err) != reservo.EINTERNAL || ctx.Err() != nil {
			return "", err
		}
		if attempt >= maxAttempts-1 {
			break
		}

		f.logger.Debug("retry fetch",
			"url", rawURL,
			"attempt", attempt+2,
			"err", err,
		)

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.RetryDelays[attempt]):
		}
	}

	return "", lastErr
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
