package mock

import "github.com/fwojciec/reservo"

var _ reservo.MetadataExtractor = (*Extractor)(nil)

// Extractor is a mock implementation of reservo.MetadataExtractor.
type Extractor struct {
	ExtractFn func(rawURL string) (*reservo.ExtractionResult, error)
}

func (e *Extractor) Extract(rawURL string) (*reservo.ExtractionResult, error) {
	return e.ExtractFn(rawURL)
}

var _ reservo.Enricher = (*Enricher)(nil)

// Enricher is a mock implementation of reservo.Enricher.
type Enricher struct {
	EnrichFn func(html string, res *reservo.ExtractionResult) error
}

func (e *Enricher) Enrich(html string, res *reservo.ExtractionResult) error {
	return e.EnrichFn(html, res)
}
