package crawl_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/fwojciec/reservo"
	"github.com/fwojciec/reservo/crawl"
	"github.com/fwojciec/reservo/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFetcher(next reservo.Fetcher) *crawl.Fetcher {
	f := crawl.NewFetcher(next, 1000, slog.New(slog.NewTextHandler(io.Discard, nil)))
	f.RetryDelays = []time.Duration{0, 0, 0}
	return f
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("succeeds on first attempt", func(t *testing.T) {
		t.Parallel()

		var attempts int
		f := newFetcher(&mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				attempts++
				return "<html>content</html>", nil
			},
		})

		html, err := f.Fetch(context.Background(), "https://www.yelp.com/biz/joes-pizza")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", html)
		assert.Equal(t, 1, attempts)
	})

	t.Run("retries transient failures", func(t *testing.T) {
		t.Parallel()

		var attempts int
		f := newFetcher(&mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				attempts++
				if attempts < 4 {
					return "", errors.New("connection reset")
				}
				return "<html>success</html>", nil
			},
		})

		html, err := f.Fetch(context.Background(), "https://www.yelp.com/biz/joes-pizza")

		require.NoError(t, err)
		assert.Equal(t, "<html>success</html>", html)
		assert.Equal(t, 4, attempts)
	})

	t.Run("returns last error after max retries", func(t *testing.T) {
		t.Parallel()

		var attempts int
		f := newFetcher(&mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				attempts++
				return "", errors.New("persistent error")
			},
		})

		_, err := f.Fetch(context.Background(), "https://www.yelp.com/biz/joes-pizza")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "persistent error")
		assert.Equal(t, 4, attempts)
	})

	t.Run("does not retry application errors", func(t *testing.T) {
		t.Parallel()

		var attempts int
		f := newFetcher(&mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				attempts++
				return "", reservo.Errorf(reservo.ENOTFOUND, "HTTP 404 for %s", url)
			},
		})

		_, err := f.Fetch(context.Background(), "https://www.yelp.com/biz/gone")

		assert.Equal(t, reservo.ENOTFOUND, reservo.ErrorCode(err))
		assert.Equal(t, 1, attempts)
	})

	t.Run("stops when context is cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())

		var attempts int
		f := newFetcher(&mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				attempts++
				cancel()
				return "", errors.New("transient error")
			},
		})

		_, err := f.Fetch(ctx, "https://www.yelp.com/biz/joes-pizza")

		require.Error(t, err)
		assert.Equal(t, 1, attempts)
	})
}

func TestFetcher_Close(t *testing.T) {
	t.Parallel()

	closed := false
	f := newFetcher(&mock.Fetcher{
		CloseFn: func() error {
			closed = true
			return nil
		},
	})

	require.NoError(t, f.Close())
	assert.True(t, closed)
}
