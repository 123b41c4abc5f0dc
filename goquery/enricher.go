package goquery

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/reservo"
)

// Ensure Enricher implements reservo.Enricher.
var _ reservo.Enricher = (*Enricher)(nil)

// Enricher fills placeholder fields of an extraction result from the
// OpenGraph tags, meta description, title and schema.org JSON-LD of the
// listing page. A field is only written while it still equals its
// placeholder, so values derived from the URL always win.
type Enricher struct {
	placeholders reservo.ExtractionResult
}

// NewEnricher creates an Enricher that treats the given values as
// placeholders.
func NewEnricher(placeholders reservo.ExtractionResult) *Enricher {
	return &Enricher{placeholders: placeholders}
}

// Enrich updates res in place from html.
func (e *Enricher) Enrich(html string, res *reservo.ExtractionResult) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return reservo.Errorf(reservo.EINVALID, "failed to parse HTML: %v", err)
	}

	// JSON-LD is the most specific source, so it goes first.
	if ld, ok := findRestaurantLD(doc); ok {
		e.applyLD(ld, res)
	}

	p := e.placeholders
	fill(&res.Name, p.Name, metaContent(doc, `meta[property="og:title"]`))
	fill(&res.Name, p.Name, strings.TrimSpace(doc.Find("title").First().Text()))
	fill(&res.Description, p.Description, metaContent(doc, `meta[property="og:description"]`))
	fill(&res.Description, p.Description, metaContent(doc, `meta[name="description"]`))
	fill(&res.ImageURL, p.ImageURL, metaContent(doc, `meta[property="og:image"]`))
	return nil
}

func (e *Enricher) applyLD(ld *restaurantLD, res *reservo.ExtractionResult) {
	p := e.placeholders
	fill(&res.Name, p.Name, ld.Name)
	fill(&res.Description, p.Description, ld.Description)
	fill(&res.PhoneNumber, p.PhoneNumber, ld.Telephone)
	fill(&res.Email, p.Email, strings.TrimPrefix(ld.Email, "mailto:"))
	fill(&res.PriceRange, p.PriceRange, ld.PriceRange)
	fill(&res.Website, p.Website, ld.URL)
	fill(&res.Cuisine, p.Cuisine, ld.cuisine())

	if ld.Address != nil {
		fill(&res.Address, p.Address, ld.Address.StreetAddress)
		fill(&res.City, p.City, ld.Address.AddressLocality)
		fill(&res.State, p.State, ld.Address.AddressRegion)
		fill(&res.ZipCode, p.ZipCode, ld.Address.PostalCode)
	}

	if ld.AggregateRating != nil && res.Rating == p.Rating {
		if v, ok := ld.AggregateRating.value(); ok && v >= 0 && v <= 5 {
			res.Rating = v
		}
	}

	images := ld.images()
	if len(images) > 0 {
		fill(&res.ImageURL, p.ImageURL, images[0])
		if len(res.Gallery) == 0 {
			res.Gallery = images
		}
	}
}

// fill sets *dst to v when *dst still holds the placeholder and v is non-empty.
func fill(dst *string, placeholder, v string) {
	v = strings.TrimSpace(v)
	if v == "" || *dst != placeholder {
		return
	}
	*dst = v
}

func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}

type restaurantLD struct {
	Type            json.RawMessage  `json:"@type"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Telephone       string           `json:"telephone"`
	Email           string           `json:"email"`
	PriceRange      string           `json:"priceRange"`
	URL             string           `json:"url"`
	ServesCuisine   json.RawMessage  `json:"servesCuisine"`
	Image           json.RawMessage  `json:"image"`
	Address         *postalAddressLD `json:"address"`
	AggregateRating *ratingLD        `json:"aggregateRating"`
}

type postalAddressLD struct {
	StreetAddress   string `json:"streetAddress"`
	AddressLocality string `json:"addressLocality"`
	AddressRegion   string `json:"addressRegion"`
	PostalCode      string `json:"postalCode"`
}

type ratingLD struct {
	RatingValue json.RawMessage `json:"ratingValue"`
}

// value accepts ratingValue as either a JSON number or a numeric string.
func (r *ratingLD) value() (float64, bool) {
	var f float64
	if err := json.Unmarshal(r.RatingValue, &f); err == nil {
		return f, true
	}
	var s string
	if err := json.Unmarshal(r.RatingValue, &s); err != nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f, err == nil
}

func (ld *restaurantLD) isRestaurant() bool {
	for _, t := range stringOrList(ld.Type) {
		switch t {
		case "Restaurant", "FoodEstablishment", "CafeOrCoffeeShop", "BarOrPub", "FastFoodRestaurant":
			return true
		}
	}
	return false
}

func (ld *restaurantLD) cuisine() string {
	list := stringOrList(ld.ServesCuisine)
	if len(list) == 0 {
		return ""
	}
	return list[0]
}

// images returns the image URLs of the node. schema.org allows a string,
// a list of strings or ImageObject values.
func (ld *restaurantLD) images() []string {
	if len(ld.Image) == 0 {
		return nil
	}
	var urls []string
	if list := stringOrList(ld.Image); len(list) > 0 {
		urls = list
	} else {
		var objs []struct {
			URL string `json:"url"`
		}
		if err := json.Unmarshal(ld.Image, &objs); err != nil {
			var obj struct {
				URL string `json:"url"`
			}
			if json.Unmarshal(ld.Image, &obj) == nil {
				objs = append(objs, obj)
			}
		}
		for _, o := range objs {
			urls = append(urls, o.URL)
		}
	}

	out := urls[:0]
	for _, u := range urls {
		if u = strings.TrimSpace(u); u != "" {
			out = append(out, u)
		}
	}
	return out
}

// stringOrList decodes a JSON value that is either a string or a list of strings.
func stringOrList(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "" {
			return nil
		}
		return []string{s}
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	return nil
}

// findRestaurantLD returns the first restaurant node from the page's
// ld+json scripts. Nodes may appear at top level, in an array or inside
// an @graph.
func findRestaurantLD(doc *goquery.Document) (*restaurantLD, bool) {
	var found *restaurantLD
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		for _, node := range ldNodes([]byte(sel.Text())) {
			var ld restaurantLD
			if err := json.Unmarshal(node, &ld); err != nil {
				continue
			}
			if ld.isRestaurant() {
				found = &ld
				return false
			}
		}
		return true
	})
	return found, found != nil
}

func ldNodes(data []byte) []json.RawMessage {
	var list []json.RawMessage
	if err := json.Unmarshal(data, &list); err == nil {
		var nodes []json.RawMessage
		for _, item := range list {
			nodes = append(nodes, ldNodes(item)...)
		}
		return nodes
	}

	var graph struct {
		Graph []json.RawMessage `json:"@graph"`
	}
	if err := json.Unmarshal(data, &graph); err == nil && len(graph.Graph) > 0 {
		return graph.Graph
	}
	return []json.RawMessage{data}
}
