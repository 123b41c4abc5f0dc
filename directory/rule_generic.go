package directory

import (
	"net"
	"net/url"
	"strings"

	"github.com/fwojciec/reservo"
	"golang.org/x/net/publicsuffix"
)

var _ reservo.SiteRule = GenericRule{}

// genericStopWords are path segments that never name a restaurant.
var genericStopWords = map[string]bool{
	"menu":    true,
	"about":   true,
	"contact": true,
	"home":    true,
	"index":   true,
}

// GenericRule handles hosts that are not a known directory site, typically
// a restaurant's own website. The name comes from the first meaningful path
// segment, or from the registrable domain when the path has segments but
// none qualifies. A bare origin yields nothing.
type GenericRule struct{}

func (GenericRule) Name() string { return "generic" }

func (GenericRule) Match(string) bool { return true }

func (GenericRule) Apply(u *url.URL, segments []string) reservo.SiteMatch {
	var m reservo.SiteMatch
	if len(segments) == 0 {
		return m
	}

	for _, seg := range segments {
		if !isMeaningfulSegment(seg) {
			continue
		}
		if tokens := trimNumeric(tokenize(seg)); len(tokens) > 0 {
			m.NameTokens = tokens
			return m
		}
	}

	if label := domainLabel(strings.ToLower(u.Hostname())); label != "" {
		m.NameTokens = tokenize(label)
	}
	return m
}

func isMeaningfulSegment(seg string) bool {
	s := strings.ToLower(seg)
	s = strings.TrimSuffix(strings.TrimSuffix(s, ".html"), ".htm")
	s = strings.TrimSuffix(s, ".php")
	return len(s) > 3 && !isNumeric(s) && !genericStopWords[s]
}

// domainLabel returns the first label of the registrable domain
// ("joespizza" for www.joespizza.co.uk).
func domainLabel(host string) string {
	if net.ParseIP(host) != nil {
		return ""
	}
	if etld1, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		host = etld1
	} else {
		host = strings.TrimPrefix(host, "www.")
	}
	label, _, _ := strings.Cut(host, ".")
	return label
}
