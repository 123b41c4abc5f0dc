package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/fwojciec/reservo"
	main "github.com/fwojciec/reservo/cmd/reservo"
	"github.com/fwojciec/reservo/directory"
	"github.com/fwojciec/reservo/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints extracted fields", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Importer: &reservo.Importer{Extractor: directory.NewExtractor()},
		}

		cmd := &main.ImportCmd{URLs: []string{"https://www.yelp.com/biz/joes-pizza-new-york-42"}, Concurrency: 2}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Joes Pizza")
		assert.Contains(t, output, "New York")
		assert.Empty(t, stderr.String())
	})

	t.Run("reports malformed URL and continues", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Importer: &reservo.Importer{Extractor: directory.NewExtractor()},
		}

		cmd := &main.ImportCmd{
			URLs:        []string{"not a url", "https://www.zomato.com/dubai/al-mahara-downtown-area"},
			Concurrency: 2,
		}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error: malformed URL")
		assert.Contains(t, stdout.String(), "Al Mahara")
	})

	t.Run("warns when no restaurant name can be derived", func(t *testing.T) {
		t.Parallel()

		placeholders := directory.DefaultPlaceholders()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:          context.Background(),
			Stdout:       stdout,
			Stderr:       stderr,
			Importer:     &reservo.Importer{Extractor: directory.NewExtractor()},
			Placeholders: &placeholders,
		}

		cmd := &main.ImportCmd{
			URLs:        []string{"https://example.com", "https://www.yelp.com/biz/joes-pizza-new-york-42"},
			Concurrency: 1,
		}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "warning: no restaurant name found: https://example.com\n", stderr.String())
		assert.Contains(t, stdout.String(), "Restaurant Name")
	})

	t.Run("prints JSON lines in input order", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Importer: &reservo.Importer{Extractor: &mock.Extractor{
				ExtractFn: func(rawURL string) (*reservo.ExtractionResult, error) {
					return &reservo.ExtractionResult{Name: rawURL}, nil
				},
			}},
		}

		cmd := &main.ImportCmd{URLs: []string{"a", "b", "c"}, JSON: true, Concurrency: 3}
		err := cmd.Run(deps)

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
		require.Len(t, lines, 3)
		for i, want := range []string{"a", "b", "c"} {
			var res reservo.ExtractionResult
			require.NoError(t, json.Unmarshal([]byte(lines[i]), &res))
			assert.Equal(t, want, res.Name)
		}
	})

	t.Run("saves results to catalog", func(t *testing.T) {
		t.Parallel()

		var created []*reservo.Restaurant
		restaurants := &mock.RestaurantService{
			CreateRestaurantFn: func(ctx context.Context, r *reservo.Restaurant) error {
				r.ID = "r-1"
				created = append(created, r)
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      &bytes.Buffer{},
			Importer:    &reservo.Importer{Extractor: directory.NewExtractor()},
			Restaurants: restaurants,
		}

		cmd := &main.ImportCmd{URLs: []string{"https://www.opentable.com/r/blue-door-bistro-chicago"}, Save: true, Concurrency: 1}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.Len(t, created, 1)
		assert.Equal(t, "https://www.opentable.com/r/blue-door-bistro-chicago", created[0].SourceURL)
		assert.Equal(t, "opentable", created[0].Source)
		assert.Contains(t, stdout.String(), "Saved")
	})

	t.Run("fetches pages concurrently within limit", func(t *testing.T) {
		t.Parallel()

		var inFlight, peak atomic.Int32
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				n := inFlight.Add(1)
				defer inFlight.Add(-1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				return "<html></html>", nil
			},
		}

		var enriched atomic.Int32
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Importer: &reservo.Importer{
				Extractor: directory.NewExtractor(),
				Fetcher:   fetcher,
				Enricher: &mock.Enricher{
					EnrichFn: func(html string, res *reservo.ExtractionResult) error {
						enriched.Add(1)
						return nil
					},
				},
			},
		}

		urls := []string{
			"https://www.yelp.com/biz/a-cafe",
			"https://www.yelp.com/biz/b-cafe",
			"https://www.yelp.com/biz/c-cafe",
			"https://www.yelp.com/biz/d-cafe",
		}
		cmd := &main.ImportCmd{URLs: urls, Fetch: true, Concurrency: 2}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, int32(4), enriched.Load())
		assert.LessOrEqual(t, peak.Load(), int32(2))
	})

	t.Run("discovers listing links from index page", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return `<html><body>
<a href="/dubai/al-mahara-downtown-area">Al Mahara</a>
<a href="https://twitter.com/zomato">Twitter</a>
</body></html>`, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Importer: &reservo.Importer{
				Extractor: directory.NewExtractor(),
				Fetcher:   fetcher,
			},
			ListingRules: directory.DefaultRules(),
		}

		cmd := &main.ImportCmd{URLs: []string{"https://www.zomato.com/dubai/best-restaurants"}, Discover: true, Concurrency: 1}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "https://www.zomato.com/dubai/al-mahara-downtown-area")
		assert.NotContains(t, output, "twitter")
	})
}
