// Package trafilatura enriches extraction results from a listing page's
// main content when structured metadata is missing.
package trafilatura

import (
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/reservo"
	"github.com/markusmobius/go-trafilatura"
)

// maxDescription caps descriptions built from page text, in runes.
const maxDescription = 280

// Ensure Enricher implements reservo.Enricher at compile time.
var _ reservo.Enricher = (*Enricher)(nil)

// Enricher wraps go-trafilatura. It fills the name, description and image
// of a result when they still hold placeholders, using the page metadata
// trafilatura detects and, for the description, the start of the main text.
type Enricher struct {
	placeholders reservo.ExtractionResult
}

// NewEnricher creates an Enricher that treats the given values as placeholders.
func NewEnricher(placeholders reservo.ExtractionResult) *Enricher {
	return &Enricher{placeholders: placeholders}
}

// Enrich updates res in place from rawHTML.
func (e *Enricher) Enrich(rawHTML string, res *reservo.ExtractionResult) error {
	if strings.TrimSpace(rawHTML) == "" {
		return reservo.Errorf(reservo.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		EnableFallback: true,
	})
	if err != nil {
		return err
	}

	p := e.placeholders
	meta := result.Metadata
	if res.Name == p.Name && meta.Title != "" {
		res.Name = strings.TrimSpace(meta.Title)
	}
	if res.ImageURL == p.ImageURL && meta.Image != "" {
		res.ImageURL = meta.Image
	}
	if res.Description == p.Description {
		if d := strings.TrimSpace(meta.Description); d != "" {
			res.Description = d
		} else if d := summarize(result.ContentText); d != "" {
			res.Description = d
		}
	}
	return nil
}

// summarize returns the first paragraph of text, cut at a word boundary.
func summarize(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.Index(text, "\n"); i >= 0 {
		text = text[:i]
	}
	text = strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(text) <= maxDescription {
		return text
	}

	runes := []rune(text)[:maxDescription]
	cut := string(runes)
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return cut + "…"
}
