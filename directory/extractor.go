// Package directory derives restaurant metadata from directory-site listing
// URLs. Each supported site has a SiteRule that knows where the restaurant
// name and location live in that site's paths; unknown hosts fall back to a
// generic path heuristic. Extraction is pure: no network I/O and no state
// carried between calls.
package directory

import (
	"net/url"
	"strings"

	"github.com/fwojciec/reservo"
)

// Compile-time interface verification.
var _ reservo.MetadataExtractor = (*Extractor)(nil)

// Extractor implements reservo.MetadataExtractor.
// It is safe for concurrent use.
type Extractor struct {
	rules        []reservo.SiteRule
	fallback     reservo.SiteRule
	placeholders reservo.ExtractionResult
	cuisines     *CuisineMatcher
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithRules replaces the ordered list of site rules.
// The first rule whose Match returns true is applied.
func WithRules(rules ...reservo.SiteRule) Option {
	return func(e *Extractor) {
		e.rules = rules
	}
}

// WithFallback sets the rule applied when no site rule matches the host.
// Defaults to GenericRule.
func WithFallback(rule reservo.SiteRule) Option {
	return func(e *Extractor) {
		e.fallback = rule
	}
}

// WithPlaceholders overrides the values used for fields that cannot be derived.
func WithPlaceholders(p reservo.ExtractionResult) Option {
	return func(e *Extractor) {
		e.placeholders = p
	}
}

// WithCuisines replaces the cuisine keyword table.
func WithCuisines(keywords []CuisineKeyword) Option {
	return func(e *Extractor) {
		e.cuisines = NewCuisineMatcher(keywords)
	}
}

// NewExtractor creates an Extractor with the built-in directory site rules.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		rules:        DefaultRules(),
		fallback:     GenericRule{},
		placeholders: DefaultPlaceholders(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.cuisines == nil {
		e.cuisines = NewCuisineMatcher(DefaultCuisines())
	}
	return e
}

// Rules returns the ordered site rules followed by the fallback rule.
func (e *Extractor) Rules() []reservo.SiteRule {
	rules := make([]reservo.SiteRule, 0, len(e.rules)+1)
	rules = append(rules, e.rules...)
	return append(rules, e.fallback)
}

// Extract parses rawURL and returns a fully populated result.
// Returns EMALFORMED if rawURL is not an absolute http(s) URL.
func (e *Extractor) Extract(rawURL string) (*reservo.ExtractionResult, error) {
	raw := strings.TrimSpace(rawURL)
	u, err := parseListingURL(raw)
	if err != nil {
		return nil, err
	}

	host := strings.ToLower(u.Hostname())
	rule, listed := e.ruleFor(host)
	m := rule.Apply(u, pathSegments(u))

	res := clonePlaceholders(e.placeholders)
	res.Source = rule.Name()

	name := titleWords(m.NameTokens)
	if name != "" {
		res.Name = name
		if local := emailLocalPart(name); local != "" {
			res.Email = "info@" + local + ".com"
		}
	}
	if m.Address != "" {
		res.Address = m.Address
	}
	if m.City != "" {
		res.City = m.City
	}
	if m.ZipCode != "" {
		res.ZipCode = m.ZipCode
	}
	switch {
	case m.State != "":
		res.State = m.State
	case m.City != "":
		if city, ok := LookupCity(m.City); ok && city.State != "" {
			res.State = city.State
		}
	}

	if cuisine := e.cuisines.Detect(strings.ToLower(raw) + " " + strings.ToLower(name)); cuisine != "" {
		res.Cuisine = cuisine
	}

	if name != "" {
		if listed {
			res.Description = res.Cuisine + " restaurant listed on " + strings.TrimPrefix(host, "www.")
			res.Website = raw
		} else {
			res.Website = u.Scheme + "://" + u.Host
		}
	}

	return res, nil
}

// ruleFor returns the first site rule matching host. The second return
// value is false when the fallback rule was chosen.
func (e *Extractor) ruleFor(host string) (reservo.SiteRule, bool) {
	for _, r := range e.rules {
		if r.Match(host) {
			return r, true
		}
	}
	return e.fallback, false
}

// parseListingURL parses raw as an absolute http or https URL.
func parseListingURL(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, reservo.Errorf(reservo.EMALFORMED, "malformed URL")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, reservo.Errorf(reservo.EMALFORMED, "malformed URL")
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Hostname() == "" {
		return nil, reservo.Errorf(reservo.EMALFORMED, "malformed URL")
	}
	return u, nil
}

// pathSegments splits the URL path on "/" and drops empty segments.
func pathSegments(u *url.URL) []string {
	parts := strings.Split(u.Path, "/")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// emailLocalPart lowercases name and keeps only ASCII letters and digits.
func emailLocalPart(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
