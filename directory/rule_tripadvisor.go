package directory

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/fwojciec/reservo"
)

var _ reservo.SiteRule = TripAdvisorRule{}

// paginationRe matches TripAdvisor review-page markers such as "or10".
var paginationRe = regexp.MustCompile(`^or\d+$`)

// TripAdvisorRule reads review pages named
// Restaurant_Review-g<geo>-d<id>-Reviews-<Name>-<City>_<Region>.html,
// where words inside a part are joined with underscores.
type TripAdvisorRule struct{}

func (TripAdvisorRule) Name() string { return "tripadvisor" }

func (TripAdvisorRule) Match(host string) bool {
	return strings.Contains(host, "tripadvisor.")
}

func (TripAdvisorRule) Apply(_ *url.URL, segments []string) reservo.SiteMatch {
	var m reservo.SiteMatch
	if len(segments) == 0 {
		return m
	}

	last := segments[len(segments)-1]
	last = strings.TrimSuffix(strings.TrimSuffix(last, ".html"), ".htm")
	parts := strings.Split(last, "-")

	rest := make([]string, 0, 2)
	for i, p := range parts {
		if p != "Reviews" {
			continue
		}
		for _, q := range parts[i+1:] {
			if q != "" && !paginationRe.MatchString(q) {
				rest = append(rest, q)
			}
		}
		break
	}
	if len(rest) == 0 {
		return m
	}

	m.NameTokens = tokenize(rest[0])
	if len(rest) > 1 {
		applyTripAdvisorLocation(&m, tokenize(rest[1]))
	}
	return m
}

// applyTripAdvisorLocation takes the city from the front of the location
// words and treats the remainder as the region.
func applyTripAdvisorLocation(m *reservo.SiteMatch, words []string) {
	if len(words) == 0 {
		return
	}
	for n := maxCityTokens; n >= 1; n-- {
		if len(words) < n {
			continue
		}
		if c, ok := cities[strings.Join(words[:n], " ")]; ok {
			m.City = c.Name
			if len(words) > n {
				m.State = titleWords(words[n:])
			} else {
				m.State = c.State
			}
			return
		}
	}
	m.City = titleWords(words[:1])
	m.State = titleWords(words[1:])
}
