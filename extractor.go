package reservo

import "net/url"

// ExtractionResult holds restaurant metadata derived from a listing URL.
// Every string field is populated: anything that could not be derived
// carries a fixed placeholder value.
type ExtractionResult struct {
	Name        string   `json:"name"`
	Cuisine     string   `json:"cuisine"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	ZipCode     string   `json:"zipCode"`
	PhoneNumber string   `json:"phoneNumber"`
	Email       string   `json:"email"`
	Description string   `json:"description"`
	OpeningTime string   `json:"openingTime"`
	ClosingTime string   `json:"closingTime"`
	PriceRange  string   `json:"priceRange"`
	Rating      float64  `json:"rating"`
	ImageURL    string   `json:"imageUrl"`
	Gallery     []string `json:"gallery"`
	Website     string   `json:"website"`

	// Source is the name of the site rule that produced the result
	// ("generic" when no directory site matched).
	Source string `json:"source"`
}

// MetadataExtractor derives restaurant metadata from directory-site URLs.
type MetadataExtractor interface {
	// Extract parses rawURL and returns a fully populated result.
	// Returns EMALFORMED if rawURL cannot be parsed as an http(s) URL.
	// All other conditions are absorbed by placeholder values.
	Extract(rawURL string) (*ExtractionResult, error)
}

// SiteMatch holds the fields a SiteRule carved out of a URL.
// Empty fields are left for the extractor to fill with placeholders.
type SiteMatch struct {
	// NameTokens are the lowercase words forming the restaurant name.
	NameTokens []string

	Address string
	City    string
	State   string
	ZipCode string
}

// SiteRule describes how to read restaurant identity out of one directory
// site's URL structure.
type SiteRule interface {
	// Name returns the rule identifier (e.g., "zomato", "yelp").
	Name() string

	// Match reports whether the rule applies to the lowercase hostname.
	Match(host string) bool

	// Apply extracts fields from the parsed URL. Segments are the
	// non-empty, unescaped path segments of u.
	Apply(u *url.URL, segments []string) SiteMatch
}

// Enricher fills placeholder fields of a result from the listing page HTML.
type Enricher interface {
	// Enrich updates res in place. Fields already derived from the URL
	// are left untouched.
	Enrich(html string, res *ExtractionResult) error
}
