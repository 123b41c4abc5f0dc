package reservo

import (
	"context"
	"fmt"
)

// Importer turns a listing URL into an extraction result, optionally
// enriched from the listing page.
type Importer struct {
	Extractor MetadataExtractor

	// Fetcher and Enricher are only used when enrichment is requested.
	Fetcher  Fetcher
	Enricher Enricher
}

// Import extracts metadata from rawURL. When enrich is set the page is
// fetched and passed through the Enricher. A fetch or enrich failure still
// returns the URL-derived result alongside the error.
func (im *Importer) Import(ctx context.Context, rawURL string, enrich bool) (*ExtractionResult, error) {
	res, err := im.Extractor.Extract(rawURL)
	if err != nil {
		return nil, err
	}
	if !enrich || im.Fetcher == nil || im.Enricher == nil {
		return res, nil
	}

	html, err := im.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return res, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	if err := im.Enricher.Enrich(html, res); err != nil {
		return res, fmt.Errorf("enrich %s: %w", rawURL, err)
	}
	return res, nil
}
