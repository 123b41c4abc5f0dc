package directory

import (
	"net/url"
	"strings"

	"github.com/fwojciec/reservo"
)

var _ reservo.SiteRule = DoorDashRule{}

// DoorDashRule reads doordash.com/store/<slug>-<id> paths, where the slug
// often ends with the city.
type DoorDashRule struct{}

func (DoorDashRule) Name() string { return "doordash" }

func (DoorDashRule) Match(host string) bool {
	return strings.Contains(host, "doordash.com")
}

func (DoorDashRule) Apply(_ *url.URL, segments []string) reservo.SiteMatch {
	var m reservo.SiteMatch

	slug := segmentAfter(segments, "store")
	if slug == "" {
		return m
	}

	tokens, city, ok := splitCity(trimNumeric(tokenize(slug)))
	if ok {
		m.City = city.Name
		m.State = city.State
	}
	name, location := splitLocation(tokens)
	m.NameTokens = name
	m.Address = titleWords(location)
	return m
}
