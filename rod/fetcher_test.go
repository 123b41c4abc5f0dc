//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/reservo"
	"github.com/fwojciec/reservo/directory"
	"github.com/fwojciec/reservo/goquery"
	"github.com/fwojciec/reservo/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ reservo.Fetcher = (*rod.Fetcher)(nil)

// listingPage injects its schema.org block from script, the way many
// directory sites do after hydration.
const listingPage = `<!DOCTYPE html>
<html>
<head><title>Listing</title></head>
<body>
<h1 id="name">Loading...</h1>
<script>
var ld = document.createElement('script');
ld.type = 'application/ld+json';
ld.text = JSON.stringify({
  "@type": "Restaurant",
  "name": "Rendered Diner",
  "telephone": "+1 212-555-0199",
  "servesCuisine": "Diner"
});
document.head.appendChild(ld);
document.getElementById('name').textContent = 'Rendered Diner';
</script>
</body>
</html>`

func newListingServer(t *testing.T, delay time.Duration) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-r.Context().Done():
				return
			}
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(listingPage))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	fetcher, err := rod.NewFetcher(rod.WithFetchTimeout(5 * time.Second))
	require.NoError(t, err)
	t.Cleanup(func() { _ = fetcher.Close() })

	t.Run("returns script rendered markup", func(t *testing.T) {
		srv := newListingServer(t, 0)

		html, err := fetcher.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Contains(t, html, `<h1 id="name">Rendered Diner</h1>`)
		assert.NotContains(t, html, "Loading...")
	})

	t.Run("rendered schema feeds the enricher", func(t *testing.T) {
		srv := newListingServer(t, 0)
		html, err := fetcher.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)

		placeholders := directory.DefaultPlaceholders()
		res := placeholders
		res.Gallery = []string{}
		err = goquery.NewEnricher(placeholders).Enrich(html, &res)

		require.NoError(t, err)
		assert.Equal(t, "Rendered Diner", res.Name)
		assert.Equal(t, "+1 212-555-0199", res.PhoneNumber)
	})

	t.Run("honours a cancelled context", func(t *testing.T) {
		srv := newListingServer(t, time.Minute)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fetcher.Fetch(ctx, srv.URL)

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestFetcher_Fetch_TimesOutOnSlowListing(t *testing.T) {
	t.Parallel()

	srv := newListingServer(t, 2*time.Second)
	fetcher, err := rod.NewFetcher(rod.WithFetchTimeout(100 * time.Millisecond))
	require.NoError(t, err)
	defer fetcher.Close()

	_, err = fetcher.Fetch(context.Background(), srv.URL)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFetcher_Close(t *testing.T) {
	t.Parallel()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)

	require.NoError(t, fetcher.Close())
	require.NoError(t, fetcher.Close())

	_, err = fetcher.Fetch(context.Background(), "https://www.yelp.com/biz/joes-pizza-new-york-42")
	assert.Equal(t, reservo.EINVALID, reservo.ErrorCode(err))
	assert.Equal(t, "fetcher is closed", reservo.ErrorMessage(err))
}
