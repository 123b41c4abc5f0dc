package reservo

// Enrichers runs each Enricher in order. Later enrichers only fill what the
// earlier ones left as placeholders.
type Enrichers []Enricher

// Enrich implements Enricher. It stops at the first error.
func (es Enrichers) Enrich(html string, res *ExtractionResult) error {
	for _, e := range es {
		if err := e.Enrich(html, res); err != nil {
			return err
		}
	}
	return nil
}
