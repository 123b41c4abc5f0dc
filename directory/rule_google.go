package directory

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/fwojciec/reservo"
)

var _ reservo.SiteRule = GoogleMapsRule{}

// stateZipRe matches the "NY 10014" part of a Google Maps place address.
var stateZipRe = regexp.MustCompile(`^([A-Za-z][A-Za-z .]*?)\s+(\d{4,6}(?:-\d{4})?)$`)

// GoogleMapsRule reads Google Maps place URLs such as
// /maps/place/Joe's+Pizza,+7+Carmine+St,+New+York,+NY+10014/@40.7,-74.0,17z.
// Place and search URLs carry a comma-separated name and address; other map
// URLs may carry a q or query parameter instead.
type GoogleMapsRule struct{}

func (GoogleMapsRule) Name() string { return "google-maps" }

func (GoogleMapsRule) Match(host string) bool {
	return strings.Contains(host, "google.") || strings.HasPrefix(host, "maps.app.goo.gl")
}

func (GoogleMapsRule) Apply(u *url.URL, segments []string) reservo.SiteMatch {
	var m reservo.SiteMatch
	if !isMapsPath(u, segments) {
		return m
	}

	place := segmentAfter(segments, "place")
	if place == "" {
		place = segmentAfter(segments, "search")
	}
	if place != "" && !strings.HasPrefix(place, "@") {
		applyPlace(&m, strings.ReplaceAll(place, "+", " "))
		return m
	}

	q := u.Query()
	query := q.Get("q")
	if query == "" {
		query = q.Get("query")
	}
	if query != "" {
		name, city, ok := splitCity(strings.Fields(strings.ToLower(query)))
		if ok {
			m.City = city.Name
			m.State = city.State
		}
		m.NameTokens = name
	}
	return m
}

// isMapsPath accepts any path on a maps.* host, including the root share
// form maps.google.com/?q=..., and /maps paths on other Google hosts.
func isMapsPath(u *url.URL, segments []string) bool {
	host := strings.ToLower(u.Hostname())
	if strings.HasPrefix(host, "maps.") {
		return true
	}
	return len(segments) > 0 && segments[0] == "maps"
}

// applyPlace splits "Name, Street, City, ST 12345" into fields.
func applyPlace(m *reservo.SiteMatch, place string) {
	parts := strings.Split(place, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	m.NameTokens = strings.Fields(strings.ToLower(parts[0]))
	if len(parts) > 1 {
		m.Address = parts[1]
	}
	if len(parts) > 2 {
		m.City = parts[2]
	}
	if len(parts) > 3 {
		if sm := stateZipRe.FindStringSubmatch(parts[3]); sm != nil {
			m.State = sm[1]
			m.ZipCode = sm[2]
		} else {
			m.State = parts[3]
		}
	}
}
