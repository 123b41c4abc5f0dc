package directory

import (
	"strings"
	"sync"

	ahocorasick "github.com/cloudflare/ahocorasick"
)

// CuisineKeyword maps a lowercase keyword to the cuisine it indicates.
type CuisineKeyword struct {
	Keyword string
	Cuisine string
}

// DefaultCuisines returns the built-in keyword table. Order matters:
// when several keywords appear, the earliest entry wins.
func DefaultCuisines() []CuisineKeyword {
	return []CuisineKeyword{
		{"italian", "Italian"},
		{"chinese", "Chinese"},
		{"indian", "Indian"},
		{"mexican", "Mexican"},
		{"japanese", "Japanese"},
		{"thai", "Thai"},
		{"french", "French"},
		{"mediterranean", "Mediterranean"},
		{"lebanese", "Lebanese"},
		{"arabic", "Arabic"},
		{"greek", "Greek"},
		{"spanish", "Spanish"},
		{"korean", "Korean"},
		{"vietnamese", "Vietnamese"},
		{"turkish", "Turkish"},
		{"american", "American"},
		{"seafood", "Seafood"},
		{"pizza", "Italian"},
		{"pasta", "Italian"},
		{"trattoria", "Italian"},
		{"sushi", "Japanese"},
		{"ramen", "Japanese"},
		{"taco", "Mexican"},
		{"curry", "Indian"},
		{"biryani", "Indian"},
		{"dim-sum", "Chinese"},
		{"shawarma", "Lebanese"},
		{"burger", "American"},
		{"steakhouse", "American"},
	}
}

// CuisineMatcher finds cuisine keywords in text in a single pass.
type CuisineMatcher struct {
	mu       sync.Mutex
	matcher  *ahocorasick.Matcher
	keywords []CuisineKeyword
}

// NewCuisineMatcher builds an Aho-Corasick automaton over the keywords.
func NewCuisineMatcher(keywords []CuisineKeyword) *CuisineMatcher {
	m := &CuisineMatcher{keywords: make([]CuisineKeyword, 0, len(keywords))}
	dict := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		normalized := strings.ToLower(strings.TrimSpace(kw.Keyword))
		if normalized == "" {
			continue
		}
		m.keywords = append(m.keywords, CuisineKeyword{Keyword: normalized, Cuisine: kw.Cuisine})
		dict = append(dict, normalized)
	}
	if len(dict) > 0 {
		m.matcher = ahocorasick.NewStringMatcher(dict)
	}
	return m
}

// Detect returns the cuisine of the earliest table entry whose keyword
// occurs in text, ignoring case. Returns "" when nothing matches.
func (m *CuisineMatcher) Detect(text string) string {
	if m.matcher == nil {
		return ""
	}

	// Matcher.Match keeps per-call state on the automaton.
	m.mu.Lock()
	hits := m.matcher.Match([]byte(strings.ToLower(text)))
	m.mu.Unlock()

	best := -1
	for _, idx := range hits {
		if idx < 0 || idx >= len(m.keywords) {
			continue
		}
		if best == -1 || idx < best {
			best = idx
		}
	}
	if best == -1 {
		return ""
	}
	return m.keywords[best].Cuisine
}
