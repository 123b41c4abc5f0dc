package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/reservo"
)

// Ensure LoggingExtractor implements reservo.MetadataExtractor.
var _ reservo.MetadataExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a MetadataExtractor with debug logging.
type LoggingExtractor struct {
	next   reservo.MetadataExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next reservo.MetadataExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the rule that matched.
func (e *LoggingExtractor) Extract(rawURL string) (res *reservo.ExtractionResult, err error) {
	defer func(begin time.Time) {
		source := ""
		if res != nil {
			source = res.Source
		}
		e.logger.Debug("extract",
			"url", rawURL,
			"source", source,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(rawURL)
}
