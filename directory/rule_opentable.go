package directory

import (
	"net/url"
	"strings"

	"github.com/fwojciec/reservo"
)

var _ reservo.SiteRule = OpenTableRule{}

// openTableReserved are top-level paths that never name a restaurant.
var openTableReserved = map[string]bool{
	"s":            true,
	"restaurant":   true,
	"restaurants":  true,
	"landmark":     true,
	"metro":        true,
	"region":       true,
	"neighborhood": true,
	"booking":      true,
}

// OpenTableRule reads opentable.com/r/<slug> and opentable.com/<slug> paths.
// Slugs optionally end with a city.
type OpenTableRule struct{}

func (OpenTableRule) Name() string { return "opentable" }

func (OpenTableRule) Match(host string) bool {
	return strings.Contains(host, "opentable.")
}

func (OpenTableRule) Apply(_ *url.URL, segments []string) reservo.SiteMatch {
	var m reservo.SiteMatch

	slug := segmentAfter(segments, "r")
	if slug == "" && len(segments) > 0 && !openTableReserved[strings.ToLower(segments[0])] {
		slug = segments[0]
	}
	if slug == "" {
		return m
	}

	tokens := trimNumeric(tokenize(slug))
	tokens, city, ok := splitCity(tokens)
	if ok {
		m.City = city.Name
		m.State = city.State
	}
	name, location := splitLocation(tokens)
	m.NameTokens = name
	m.Address = titleWords(location)
	return m
}
