package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/outline"
)

// Ensure LoggingLoader implements outline.Loader.
var _ outline.Loader = (*LoggingLoader)(nil)

// LoggingLoader wraps a Loader with logging.
type LoggingLoader struct {
	next   outline.Loader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next outline.Loader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// Load logs the target and delegates to the wrapped loader.
func (l *LoggingLoader) Load(ctx context.Context, target string) (doc outline.Document, err error) {
	defer func(begin time.Time) {
		l.logger.Info("load",
			"target", target,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Load(ctx, target)
}

// Close logs and delegates to the wrapped loader.
func (l *LoggingLoader) Close() (err error) {
	defer func() {
		if err != nil {
			l.logger.Warn("close loader", "err", err)
		}
	}()
	return l.next.Close()
}
