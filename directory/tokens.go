package directory

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// locationKeywords mark the start of a location qualifier inside a slug.
var locationKeywords = map[string]bool{
	"area":     true,
	"centre":   true,
	"center":   true,
	"district": true,
	"zone":     true,
	"street":   true,
	"road":     true,
	"avenue":   true,
	"plaza":    true,
	"mall":     true,
	"square":   true,
}

// nameStopWords are generic venue words dropped from derived names.
var nameStopWords = map[string]bool{
	"restaurant": true,
	"cafe":       true,
	"bar":        true,
	"grill":      true,
	"bistro":     true,
	"kitchen":    true,
}

// tokenize lowercases a slug, strips an .html/.htm extension and splits
// it on hyphens, underscores, plus signs and whitespace.
func tokenize(slug string) []string {
	s := strings.ToLower(slug)
	s = strings.TrimSuffix(s, ".html")
	s = strings.TrimSuffix(s, ".htm")
	return strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case '-', '_', '+', ' ', '\t':
			return true
		}
		return false
	})
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// trimNumeric drops trailing purely numeric tokens (listing ids, dedupe suffixes).
func trimNumeric(tokens []string) []string {
	end := len(tokens)
	for end > 0 && isNumeric(tokens[end-1]) {
		end--
	}
	return tokens[:end]
}

// splitLocation splits tokens at the first location keyword. The word
// before the keyword belongs to the location ("downtown area") as long as
// at least one name token remains.
func splitLocation(tokens []string) (name, location []string) {
	for i, tok := range tokens {
		if !locationKeywords[tok] {
			continue
		}
		start := i
		if i >= 2 {
			start = i - 1
		}
		if start == 0 {
			// A slug starting with a keyword has no name to protect.
			return tokens, nil
		}
		return tokens[:start], tokens[start:]
	}
	return tokens, nil
}

// splitCity splits a trailing known city off tokens, keeping at least one
// name token. Longer city names are preferred.
func splitCity(tokens []string) (name []string, city City, ok bool) {
	for n := maxCityTokens; n >= 1; n-- {
		if len(tokens) <= n {
			continue
		}
		if c, found := cities[strings.Join(tokens[len(tokens)-n:], " ")]; found {
			return tokens[:len(tokens)-n], c, true
		}
	}
	return tokens, City{}, false
}

// removeStopWords drops generic venue words. If every token is a stop
// word the input is returned unchanged.
func removeStopWords(tokens []string) []string {
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !nameStopWords[tok] {
			kept = append(kept, tok)
		}
	}
	if len(kept) == 0 {
		return tokens
	}
	return kept
}

// titleWords joins tokens with spaces and title-cases the result.
func titleWords(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	// Casers are stateful; one per call keeps Extract safe for concurrent use.
	return cases.Title(language.English).String(strings.Join(tokens, " "))
}
