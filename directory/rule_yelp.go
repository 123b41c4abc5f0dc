package directory

import (
	"net/url"
	"strings"

	"github.com/fwojciec/reservo"
)

var _ reservo.SiteRule = YelpRule{}

// YelpRule reads yelp.com/biz/<name>-<city>[-<n>] paths. Yelp slugs usually
// end with the city, followed by a numeric suffix for duplicate names.
type YelpRule struct{}

func (YelpRule) Name() string { return "yelp" }

func (YelpRule) Match(host string) bool {
	return strings.Contains(host, "yelp.")
}

func (YelpRule) Apply(_ *url.URL, segments []string) reservo.SiteMatch {
	var m reservo.SiteMatch

	slug := segmentAfter(segments, "biz")
	if slug == "" {
		return m
	}

	tokens := trimNumeric(tokenize(slug))
	name, city, ok := splitCity(tokens)
	switch {
	case ok:
		m.City = city.Name
		m.State = city.State
	case len(tokens) >= 2 && !nameStopWords[tokens[len(tokens)-1]]:
		// An unknown trailing word is still the city, unless it is a
		// venue word such as "grill".
		name = tokens[:len(tokens)-1]
		m.City = titleWords(tokens[len(tokens)-1:])
	}

	m.NameTokens = removeStopWords(name)
	return m
}
