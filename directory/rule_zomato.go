package directory

import (
	"net/url"
	"strings"

	"github.com/fwojciec/reservo"
)

var _ reservo.SiteRule = ZomatoRule{}

// zomatoSections are city-level listing pages rather than restaurants.
var zomatoSections = map[string]bool{
	"restaurants": true,
	"delivery":    true,
	"dine-out":    true,
	"nightlife":   true,
	"collections": true,
}

// ZomatoRule reads zomato.com/<city>/<restaurant-slug> paths.
type ZomatoRule struct{}

func (ZomatoRule) Name() string { return "zomato" }

func (ZomatoRule) Match(host string) bool {
	return strings.Contains(host, "zomato.com")
}

func (ZomatoRule) Apply(_ *url.URL, segments []string) reservo.SiteMatch {
	var m reservo.SiteMatch
	if len(segments) == 0 {
		return m
	}

	m.City = cityName(segments[0])
	if len(segments) < 2 || zomatoSections[strings.ToLower(segments[1])] {
		return m
	}

	name, location := splitLocation(trimNumeric(tokenize(segments[1])))
	m.NameTokens = name
	m.Address = titleWords(location)
	return m
}

// cityName returns the display form of a city slug, using the known city
// table when possible.
func cityName(slug string) string {
	if c, ok := LookupCity(slug); ok {
		return c.Name
	}
	return titleWords(tokenize(slug))
}
