package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/reservo"
)

// ListingLinks returns the absolute URLs of anchors in html whose host is
// accepted by match. It is used to pull restaurant listing URLs out of a
// directory search or collection page. Links are deduplicated and keep
// document order.
func ListingLinks(html, baseURL string, match func(host string) bool) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, reservo.Errorf(reservo.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, reservo.Errorf(reservo.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" || isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == nil {
			return
		}
		if !match(strings.ToLower(resolved.Hostname())) {
			return
		}

		// Listing paths carry the restaurant slug; bare hosts are navigation.
		if strings.Trim(resolved.Path, "/") == "" {
			return
		}

		s := resolved.String()
		if seen[s] {
			return
		}
		seen[s] = true
		links = append(links, s)
	})

	return links, nil
}

// resolveURL resolves href against base with query and fragment stripped.
// Returns nil for unparsable or self-referential links.
func resolveURL(base *url.URL, href string) *url.URL {
	ref, err := url.Parse(href)
	if err != nil {
		return nil
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	resolved.RawQuery = ""
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return nil
	}

	self := *base
	self.Fragment = ""
	self.RawQuery = ""
	if resolved.String() == self.String() {
		return nil
	}
	return resolved
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
