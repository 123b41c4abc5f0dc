package main

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/reservo"
	"github.com/fwojciec/reservo/directory"
	"github.com/fwojciec/reservo/goquery"
	"golang.org/x/sync/errgroup"
)

// importResult is the outcome for one listing URL.
type importResult struct {
	URL    string
	Result *reservo.ExtractionResult
	Err    error
}

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	urls := c.URLs
	if c.Discover {
		discovered, err := c.discover(deps)
		if err != nil {
			return err
		}
		if len(discovered) == 0 {
			fmt.Fprintln(deps.Stderr, "No listing links found.")
			return nil
		}
		urls = discovered
	}

	results := make([]importResult, len(urls))

	g, ctx := errgroup.WithContext(deps.Ctx)
	limit := c.Concurrency
	if limit <= 0 {
		limit = 1
	}
	g.SetLimit(limit)

	for i, u := range urls {
		g.Go(func() error {
			res, err := deps.Importer.Import(ctx, u, c.Fetch)
			results[i] = importResult{URL: u, Result: res, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	var failed int
	for _, r := range results {
		if r.Result == nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", reservo.ErrorMessage(r.Err), r.URL)
			continue
		}
		if r.Err != nil {
			fmt.Fprintf(deps.Stderr, "warning: %v\n", r.Err)
		}
		if deps.Placeholders != nil && directory.IsPlaceholder(r.Result, *deps.Placeholders, "name") {
			fmt.Fprintf(deps.Stderr, "warning: no restaurant name found: %s\n", r.URL)
		}

		if err := c.print(deps, r); err != nil {
			return err
		}

		if c.Save {
			restaurant := reservo.NewRestaurantFromExtraction(r.URL, r.Result)
			if err := deps.Restaurants.CreateRestaurant(deps.Ctx, restaurant); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", reservo.ErrorMessage(err))
				return err
			}
			if !c.JSON {
				fmt.Fprintf(deps.Stdout, "Saved %q (%s)\n\n", restaurant.Name, restaurant.ID)
			}
		}
	}

	if failed > 0 {
		return reservo.Errorf(reservo.EINVALID, "%d of %d URLs could not be imported", failed, len(urls))
	}
	return nil
}

func (c *ImportCmd) print(deps *Dependencies, r importResult) error {
	if c.JSON {
		b, err := json.Marshal(r.Result)
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, string(b))
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%s\n%s\n", r.URL, reservo.FormatExtraction(r.Result))
	if !c.Save {
		fmt.Fprintln(deps.Stdout)
	}
	return nil
}

// discover fetches each URL as an index page and collects the listing
// links it contains, in order and without duplicates.
func (c *ImportCmd) discover(deps *Dependencies) ([]string, error) {
	fetcher := deps.Importer.Fetcher
	if fetcher == nil {
		return nil, reservo.Errorf(reservo.EINVALID, "discovery requires a fetcher")
	}

	seen := make(map[string]bool)
	var links []string
	for _, index := range c.URLs {
		if u, err := url.Parse(index); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			fmt.Fprintf(deps.Stderr, "error: malformed URL: %s\n", index)
			continue
		}

		html, err := fetcher.Fetch(deps.Ctx, index)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "warning: fetch %s: %v\n", index, err)
			continue
		}

		found, err := goquery.ListingLinks(html, index, c.isListingHost(deps.ListingRules))
		if err != nil {
			fmt.Fprintf(deps.Stderr, "warning: %s: %s\n", index, reservo.ErrorMessage(err))
			continue
		}
		for _, l := range found {
			if !seen[l] {
				seen[l] = true
				links = append(links, l)
			}
		}
	}
	return links, nil
}

func (c *ImportCmd) isListingHost(rules []reservo.SiteRule) func(string) bool {
	return func(host string) bool {
		host = strings.ToLower(host)
		for _, r := range rules {
			if r.Match(host) {
				return true
			}
		}
		return false
	}
}
