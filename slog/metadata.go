package slog

import (
	"log/slog"
	"time"

	"github.com/pranavarora99/pagesum"
)

var _ pagesum.MetadataExtractor = (*LoggingMetadataExtractor)(nil)

// LoggingMetadataExtractor wraps a MetadataExtractor with debug logging.
type LoggingMetadataExtractor struct {
	next   pagesum.MetadataExtractor
	logger *slog.Logger
}

// NewLoggingMetadataExtractor creates a new LoggingMetadataExtractor.
func NewLoggingMetadataExtractor(next pagesum.MetadataExtractor, logger *slog.Logger) *LoggingMetadataExtractor {
	return &LoggingMetadataExtractor{next: next, logger: logger}
}

// Name delegates to the wrapped extractor.
func (e *LoggingMetadataExtractor) Name() string {
	return e.next.Name()
}

// Metadata delegates to the wrapped extractor and logs which fields it found.
func (e *LoggingMetadataExtractor) Metadata(html string, pageURL string) (m *pagesum.PageMetadata, err error) {
	defer func(begin time.Time) {
		var title, description, image bool
		if m != nil {
			title = m.Title != ""
			description = m.Description != ""
			image = m.Image != ""
		}
		e.logger.Debug("metadata",
			"extractor", e.next.Name(),
			"url", pageURL,
			"title", title,
			"description", description,
			"image", image,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Metadata(html, pageURL)
}
