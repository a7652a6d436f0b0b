package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pranavarora99/pagesum"
)

var _ pagesum.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with logging. Degraded summaries
// are logged at warn level.
type LoggingSummarizer struct {
	next   pagesum.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next pagesum.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped summarizer and logs the result shape.
func (s *LoggingSummarizer) Summarize(doc pagesum.Document) (summary pagesum.PageSummary) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if summary.Degraded {
			level = slog.LevelWarn
		}
		s.logger.Log(context.Background(), level, "summarize",
			"url", summary.URL,
			"keyPoints", len(summary.KeyPoints),
			"images", len(summary.Images),
			"words", summary.Metrics.WordCount,
			"degraded", summary.Degraded,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Summarize(doc)
}
