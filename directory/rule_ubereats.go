package directory

import (
	"net/url"
	"strings"

	"github.com/fwojciec/reservo"
)

var _ reservo.SiteRule = UberEatsRule{}

// UberEatsRule reads ubereats.com/[<locale>/]store/<slug>/<id> paths.
type UberEatsRule struct{}

func (UberEatsRule) Name() string { return "ubereats" }

func (UberEatsRule) Match(host string) bool {
	return strings.Contains(host, "ubereats.com")
}

func (UberEatsRule) Apply(_ *url.URL, segments []string) reservo.SiteMatch {
	var m reservo.SiteMatch

	slug := segmentAfter(segments, "store")
	if slug == "" {
		return m
	}

	name, location := splitLocation(trimNumeric(tokenize(slug)))
	m.NameTokens = name
	m.Address = titleWords(location)
	return m
}
