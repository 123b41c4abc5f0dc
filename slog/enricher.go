package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/reservo"
)

// Ensure LoggingEnricher implements reservo.Enricher.
var _ reservo.Enricher = (*LoggingEnricher)(nil)

// LoggingEnricher wraps an Enricher with debug logging.
type LoggingEnricher struct {
	next   reservo.Enricher
	logger *slog.Logger
}

// NewLoggingEnricher creates a new LoggingEnricher.
func NewLoggingEnricher(next reservo.Enricher, logger *slog.Logger) *LoggingEnricher {
	return &LoggingEnricher{next: next, logger: logger}
}

// Enrich delegates to the wrapped enricher and logs the operation.
func (e *LoggingEnricher) Enrich(html string, res *reservo.ExtractionResult) (err error) {
	defer func(begin time.Time) {
		e.logger.Debug("enrich",
			"name", res.Name,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Enrich(html, res)
}
