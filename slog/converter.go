package slog

import (
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/outline"
)

// Ensure LoggingConverter implements outline.Converter.
var _ outline.Converter = (*LoggingConverter)(nil)

// LoggingConverter wraps a Converter with debug logging.
type LoggingConverter struct {
	next   outline.Converter
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter.
func NewLoggingConverter(next outline.Converter, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, logger: logger}
}

// Convert delegates to the wrapped converter and logs the outline size.
func (c *LoggingConverter) Convert(doc outline.Document) (text string) {
	defer func(begin time.Time) {
		lines := 0
		if text != "" {
			lines = strings.Count(text, "\n") + 1
		}
		c.logger.Debug("convert",
			"lines", lines,
			"bytes", len(text),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return c.next.Convert(doc)
}
